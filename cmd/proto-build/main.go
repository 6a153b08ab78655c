package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync/atomic"
	"syscall"

	"github.com/jtcooper10/proto-build/internal/cmdopts"
	"github.com/jtcooper10/proto-build/internal/compiler"
	"github.com/jtcooper10/proto-build/internal/driver"
	"github.com/jtcooper10/proto-build/internal/log"
)

// setupCloseHandler creates a 'listener' on a new goroutine which will notify the
// program if it receives an interrupt from the OS. We then handle this by calling
// our clean up procedure and exiting the program.
func setupCloseHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.GetLogger(mainCtx).Debug("SetupCloseHandler received an interrupt from OS. Closing session...")
		cancel()
		exitCode.Store(cmdopts.ExitCodeUserCancel)
	}()
}

var (
	exitCode atomic.Int32       // Exit code to be returned to the OS
	mainCtx  context.Context    // Main context for the application
	cancel   context.CancelFunc // Cancel function to stop the main context
	logger   log.LoggerHooker   // Logger for the application
	opts     *cmdopts.Options   // Command line options for the application
	err      error
)

var Exit = os.Exit

func main() {

	exitCode.Store(cmdopts.ExitCodeOK)
	defer func() {
		if err := recover(); err != nil {
			exitCode.Store(cmdopts.ExitCodeFatalError)
			log.GetLogger(mainCtx).WithField("callstack", string(debug.Stack())).Error(err)
		}
		Exit(int(exitCode.Load()))
	}()

	mainCtx, cancel = context.WithCancel(context.Background())
	setupCloseHandler(cancel)
	defer cancel()

	if opts, err = cmdopts.New(os.Stdout); err != nil {
		printVersion()
		fmt.Println(err)
		if !opts.Help {
			exitCode.Store(cmdopts.ExitCodeConfigError)
		}
		return
	}

	// check if some sub-command was executed and exit
	if opts.CommandCompleted {
		exitCode.Store(opts.ExitCode)
		return
	}

	logger = log.Init(opts.Logging)
	mainCtx = log.WithLogger(mainCtx, logger)

	logger.Debugf("opts: %+v", opts)

	if err = opts.InitManifestReader(mainCtx); err != nil {
		exitCode.Store(cmdopts.ExitCodeConfigError)
		logger.Error(err)
		return
	}

	if err = opts.InitReportWriter(mainCtx); err != nil {
		exitCode.Store(cmdopts.ExitCodeConfigError)
		logger.Error(err)
		return
	}

	if err = driver.New(mainCtx, opts).Run(mainCtx); err != nil {
		var cerr *compiler.CompilationError
		switch {
		case errors.As(err, &cerr):
			exitCode.Store(cmdopts.ExitCodeCompileError)
		case errors.Is(err, context.Canceled):
			// keep the exit code stored by the close handler
		default:
			exitCode.Store(cmdopts.ExitCodeCmdError)
		}
		logger.Error(err)
		return
	}
}
