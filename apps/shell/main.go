package main

import (
	"errors"
	"log"
	"os"

	"github.com/seekhobharat/client/apps"
	"github.com/seekhobharat/client/core"
	"github.com/seekhobharat/client/core/assignment"
	"github.com/seekhobharat/client/core/cart"
	"github.com/seekhobharat/client/core/course"
	"github.com/seekhobharat/client/core/dashboard"
	"github.com/seekhobharat/client/core/flashcard"
	"github.com/seekhobharat/client/core/guard"
	"github.com/seekhobharat/client/core/session"
	"github.com/seekhobharat/client/core/student"
	logsvc "github.com/seekhobharat/client/services/logger"
	"github.com/seekhobharat/client/services/rest"
	localstore "github.com/seekhobharat/client/storage/local"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stderr, "SHELL : ", log.LstdFlags|log.Lmicroseconds)

	conf, err := core.LoadConfig()
	errAndDie(err)

	var appLog core.Logger
	if conf.RollbarToken != "" && !conf.TestMode() {
		appLog = logsvc.NewRollbarLogger(logger, conf)
	} else {
		appLog = logsvc.NewConsoleLogger(logger, conf.Debug)
	}

	storage, err := localstore.Open(conf.StoragePath)
	errAndDie(err)

	api, err := rest.NewClient(conf, appLog)
	errAndDie(err)

	validate, translator := core.NewValidator()
	sessions := session.NewStore(api, storage, appLog, validate, translator)

	cli := commandLine{
		conf:        conf,
		sessions:    sessions,
		guard:       guard.New(sessions, appLog),
		courses:     course.NewService(api, appLog, validate, translator),
		cart:        cart.NewService(api, storage, appLog),
		students:    student.NewService(api, appLog, validate, translator),
		assignments: assignment.NewService(api, appLog, validate, translator),
		flashcards:  flashcard.NewService(api, appLog, validate, translator),
		dashboards:  dashboard.NewService(api, appLog),
		validate:    validate,
		translator:  translator,
	}
	if err := cli.run(os.Args); err != nil {
		var argErr *apps.ArgumentError
		switch {
		case err == errHelp:
		case errors.As(err, &argErr):
			logger.Printf("\nerror: %s\n", argErr)
			cli.printUsage()
		default:
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
