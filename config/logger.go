package config

import "github.com/sadlil/gologger"

var Logger gologger.GoLogger

func SetLogger() {
	Logger = gologger.GetLogger(gologger.CONSOLE, gologger.SimpleLog)
	Logger.Info("Logger initialized")
}
