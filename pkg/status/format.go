// Copyright 2025 walteh LLC
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

package status

import (
	"fmt"
)

// FormatSummary renders a one-line description of a run
func FormatSummary(s *Summary) string {
	if s == nil {
		return "no files processed"
	}

	noun := "files"
	if s.Candidates == 1 {
		noun = "file"
	}

	msg := fmt.Sprintf("%d candidate %s: %d updated, %d unchanged, %d failed (%d replacements, %d skipped by filter)",
		s.Candidates, noun, s.Updated, s.Unchanged, s.Failed, s.Replacements, s.Skipped)
	return msg
}
