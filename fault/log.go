// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var panicLog struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise
func Initialise() error {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		return ErrAlreadyInitialised
	}
	panicLog.log = logger.New("PANIC")
	if nil == panicLog.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		panicLog.log.Flush()
		panicLog.log = nil
	}
}

// Panicf - an internal invariant was violated, log and panic
//
// this is for programming errors only, never for runtime conditions
func Panicf(format string, arguments ...interface{}) {
	message := criticalf(2, format, arguments...)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// prefix the message with the caller and send it to the PANIC channel
// or stdout if that channel is not setup
func criticalf(skip int, format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(skip); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}

	panicLog.Lock()
	defer panicLog.Unlock()

	if nil == panicLog.log {
		fmt.Printf("*** %s\n", message)
	} else {
		panicLog.log.Critical(message)
		panicLog.log.Flush() // make sure log file is saved
	}
	return message
}
