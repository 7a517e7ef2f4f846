// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

// App is the name of the directory knockout keeps its files in.
const App = "knockout"

var (
	// Directory is the per-user configuration directory of knockout.
	Directory = filepath.Join(xdg.ConfigHome, App)

	// ConfigFile is where the default tournament configuration is saved.
	ConfigFile = filepath.Join(Directory, "config.yaml")
)

// FindConfig looks for a saved tournament configuration in the xdg config
// directories, returning false if there is none.
func FindConfig() (string, bool) {
	path, err := xdg.SearchConfigFile(filepath.Join(App, "config.yaml"))
	if err != nil {
		return "", false
	}

	return path, true
}

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, FilePermissions)
	}
}

// WriteConfig saves data as the default configuration, creating the
// config directory if needed.
func WriteConfig(data []byte) error {
	TryMkdir(Directory)
	return os.WriteFile(ConfigFile, data, 0644)
}
