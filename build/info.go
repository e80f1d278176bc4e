/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package build holds the release metadata reported by the version command.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Set from main, which receives them through the linker -X flag when
	// compiling release binaries.
	tag      = "dev"
	rev      = "none"
	utcTime  = "unknown"
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)

// Info stores the build information
type Info struct {
	GoVersion string
	Tag       string
	Time      string
	Revision  string
	Platform  string
}

// Short returns a pretty printed build and version summary.
func (i Info) Short() string {
	return fmt.Sprintf("bintree %s (%s, commit %s, built %s, %s)",
		i.Tag, i.Platform, i.Revision, i.Time, i.GoVersion)
}

// Set overrides the release metadata. Empty values keep the current ones.
func Set(version, commit, date string) {
	if version != "" {
		tag = version
	}
	if commit != "" {
		rev = commit
	}
	if date != "" {
		utcTime = date
	}
}

// GetInfo returns an Info struct populated with the build information.
func GetInfo() Info {
	return Info{
		GoVersion: runtime.Version(),
		Tag:       tag,
		Time:      utcTime,
		Revision:  rev,
		Platform:  platform,
	}
}
