// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sidediff

import "znkr.io/sidediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// AutoJunk enables a heuristic that ignores very popular lines when searching for matches.
//
// If the right input has at least 200 lines, lines that make up more than 1% of it (e.g., blank
// lines or closing braces) are not used to anchor matches. They still match as part of longer
// runs. This reduces the cost of comparing inputs with many repeated lines considerably, at the
// cost of sometimes missing matches that consist of popular lines only.
func AutoJunk() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.AutoJunk = true
		return config.AutoJunk
	}
}
