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

// Package config holds globally available configuration variables, set by
// defaults and optionally overridden by a TOML config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/kjd-chess/harrier/internal/util"
)

var (
	// ConfFile is the path to the config file, relative to the working
	// directory unless absolute.
	ConfFile = "./config.toml"

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the config file (if found) over the compiled-in defaults.
// Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found, using defaults (", err, ")")
	}
	setupLogLvl()
	initialized = true
}

// String renders the current configuration for diagnostics.
func (settings *conf) String() string {
	var b strings.Builder
	for name, v := range map[string]interface{}{"Log": &settings.Log, "Search": &settings.Search, "Eval": &settings.Eval} {
		b.WriteString(name + ":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			b.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	return b.String()
}
