//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// logConfiguration holds the named log levels for three of the engine's
// loggers (standard, search, test), given as the string keys of
// LogLevels. The UCI traffic logger has no configurable level.
type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
	TestLogLvl   string

	LogLevel       int
	SearchLogLevel int
	TestLogLevel   int
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
	Settings.Log.TestLogLvl = "debug"

	Settings.Log.LogLevel = LogLevels[Settings.Log.LogLvl]
	Settings.Log.SearchLogLevel = LogLevels[Settings.Log.SearchLogLvl]
	Settings.Log.TestLogLevel = LogLevels[Settings.Log.TestLogLvl]
}

func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		Settings.Log.LogLevel = LogLevels[Settings.Log.LogLvl]
	}
	if Settings.Log.SearchLogLvl != "" {
		Settings.Log.SearchLogLevel = LogLevels[Settings.Log.SearchLogLvl]
	}
	if Settings.Log.TestLogLvl != "" {
		Settings.Log.TestLogLevel = LogLevels[Settings.Log.TestLogLvl]
	}
}

// LogLevels maps the TOML-friendly level names to op/go-logging's
// numerical Level values.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
