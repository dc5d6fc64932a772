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

/*
Package status describes the outcome of rewriting files.

Every file seen by a run produces exactly one Result. Results are values: the
rewriter never panics or aborts on a bad file, it returns a Result with
StatusFailed and the error, and the driving loop moves on.

	+-----------+      +-----------+      +-----------+
	|  Rewriter | ---> |  Result   | ---> |  Summary  |
	+-----------+      +-----------+      +-----------+

🔍 Example:

	var sum status.Summary
	for _, r := range results {
		sum.Add(r)
	}
	fmt.Println(status.FormatSummary(&sum))
*/
package status
