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

// 📊 FileStatus represents what happened to a single file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusSkipped              // Not a candidate, never opened
	StatusUnchanged            // Candidate read, no replacement changed it
	StatusUpdated              // Content changed and was written back
	StatusFailed               // Read, decode or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusUnchanged:
		return "unchanged"
	case StatusUpdated:
		return "updated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Result is the outcome of rewriting one file
type Result struct {
	Path         string     // Path joined from the walk root
	Rel          string     // Slash-separated path relative to the walk root
	Status       FileStatus // What happened
	Replacements int        // Number of occurrences replaced
	Err          error      // Set only when Status is StatusFailed
}

// IsCandidate reports whether the file passed the candidate filter
func (r Result) IsCandidate() bool {
	return r.Status != StatusSkipped && r.Status != StatusUnknown
}

// 📈 Summary tallies the results of a run
type Summary struct {
	Seen         int // every file the walker yielded
	Candidates   int
	Updated      int
	Unchanged    int
	Skipped      int
	Failed       int
	Replacements int

	Failures []Result
}

// Add records a result
func (s *Summary) Add(r Result) {
	s.Seen++
	if r.IsCandidate() {
		s.Candidates++
	}

	switch r.Status {
	case StatusUpdated:
		s.Updated++
		s.Replacements += r.Replacements
	case StatusUnchanged:
		s.Unchanged++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
		s.Failures = append(s.Failures, r)
	}
}

// HasFailures reports whether any candidate failed
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}
