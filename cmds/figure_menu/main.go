package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/unixpickle/essentials"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		essentials.Die("load .env:", err)
	}

	var lang string
	var debug bool
	var capacity int
	flag.StringVar(&lang, "lang", envString("FIGURE_MENU_LANG", "en"),
		"language tag used to format numbers")
	flag.BoolVar(&debug, "debug", envBool("FIGURE_MENU_DEBUG", false), "log every operation")
	flag.IntVar(&capacity, "capacity", envInt("FIGURE_MENU_CAPACITY", 0),
		"initial capacity of the figure array")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: figure_menu [flags]")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()
	if len(flag.Args()) != 0 {
		flag.Usage()
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	tag, err := language.Parse(lang)
	if err != nil {
		log.WithError(err).WithField("lang", lang).Warn("falling back to English")
		tag = language.English
	}

	log.WithField("capacity", capacity).Debug("starting session")
	session := NewSession(os.Stdin, os.Stdout, message.NewPrinter(tag), log, capacity)
	essentials.Must(session.Run())
}

func envString(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	v, err := strconv.ParseBool(envString(name, strconv.FormatBool(fallback)))
	if err != nil {
		essentials.Die("invalid", name+":", err)
	}
	return v
}

func envInt(name string, fallback int) int {
	v, err := strconv.Atoi(envString(name, strconv.Itoa(fallback)))
	if err != nil {
		essentials.Die("invalid", name+":", err)
	}
	return v
}
