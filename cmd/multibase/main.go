// Command multibase encodes and decodes data with arbitrary alphabets.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cmd := newRootCmd(log)

	err := cmd.Execute()
	if err != nil {
		log.WithError(err).Fatal("multibase failed")
	}
}
