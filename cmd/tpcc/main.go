package main

import (
	"flag"

	"tpcc/configs"
	"tpcc/store"
	"tpcc/verify"
	"tpcc/workload"
)

var (
	ware       int
	numProgram int
	seed       int64
	doVerify   bool
	debug      bool
	configPath string
)

func usage() {
	flag.PrintDefaults()
}

func init() {
	flag.IntVar(&ware, "ware", 2, "the number of warehouses")
	flag.IntVar(&numProgram, "programs", 100, "the number of programs to generate and run")
	flag.Int64Var(&seed, "seed", 1234, "the seed for the deterministic workload generator")
	flag.BoolVar(&doVerify, "verify", false, "run the same seed through a second engine and compare")
	flag.BoolVar(&debug, "debug", false, "enable verbose logging")
	flag.StringVar(&configPath, "config", "", "optional .properties file overriding ware/programs/debug")
	flag.Usage = usage
}

func main() {
	flag.Parse()

	configs.SetNumWare(int32(ware))
	configs.SetNumPrograms(int32(numProgram))
	configs.SetDebug(debug)
	if configPath != "" {
		configs.CheckError(configs.LoadConfig(configPath))
	}

	engine := store.NewEngine()
	workload.Populate(engine, seed)
	dispatcher := workload.NewDispatcher(engine)
	ran := dispatcher.Run(workload.NewGenerator(seed, configs.NumPrograms))
	configs.LPrintf("ran %d programs against %d warehouses", ran, configs.NumWare)

	if doVerify {
		reference := store.NewEngine()
		workload.Populate(reference, seed)
		workload.NewDispatcher(reference).Run(workload.NewGenerator(seed, configs.NumPrograms))
		verify.PrintReport(verify.Compare(engine, reference))
	}
}
