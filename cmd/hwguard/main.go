package main

import (
	"github.com/michaelquigley/pfxlog"
	"github.com/openbmc-tools/hwguard/cmd/hwguard/subcmd"
	"github.com/sirupsen/logrus"
)

func init() {
	pfxlog.GlobalInit(logrus.InfoLevel, pfxlog.DefaultOptions().SetTrimPrefix("github.com/openbmc-tools/"))
}

func main() {
	subcmd.Execute()
}
