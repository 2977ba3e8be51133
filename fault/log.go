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
var channel struct {
	sync.Mutex
	log *logger.L
}

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	channel.Lock()
	defer channel.Unlock()

	if nil != channel.log {
		return ErrAlreadyInitialised
	}
	channel.log = logger.New("PANIC")
	if nil == channel.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	channel.Lock()
	defer channel.Unlock()

	if nil != channel.log {
		channel.log.Flush()
		channel.log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(2, format, arguments...)
}

// Defect - log a broken invariant and return err wrapped with the
// formatted detail so that the class of err is preserved
func Defect(err error, format string, arguments ...interface{}) error {
	detail := fmt.Sprintf(format, arguments...)
	internalCriticalf(2, "%s: %s", detail, err)
	return fmt.Errorf("%s: %w", detail, err)
}

// Panicf - panic with a formatted message after logging it
func Panicf(format string, arguments ...interface{}) {
	internalCriticalf(2, format, arguments...)
	flushAndPanic(fmt.Sprintf(format, arguments...))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf(2, "%s", s)
	flushAndPanic(s)
}

func flushAndPanic(message string) {
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		arguments = append(a, arguments...)
		format = "(%q:%d) " + format
	}

	channel.Lock()
	defer channel.Unlock()

	if nil == channel.log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	channel.log.Criticalf(format, arguments...)
	channel.log.Flush() // make sure log file is saved
}
