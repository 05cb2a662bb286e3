// Copyright 2026 Ian Lewis
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

package testutil

// SystemTable is a synonym table with two groups sharing the headword
// "open".
const SystemTable = `6,1,0,1/2,0,0,0,(商売),開店
6,1,0,1/3,0,0,0,(商売),始業
6,1,0,1,0,0,0,(商売),営業開始
6,1,0,1,0,0,0,(商売),店開き
6,1,1,1,0,0,0,(商売),オープン
6,1,0,1,2,1,0,(商売),open
6,1,2,1,0,0,0,(商売),開業

100006,1,0,,0,0,0,,open
100006,1,0,,0,0,0,,開放
`

// UserTable is a synonym table where "open" has verb synonyms.
const UserTable = `100,2,0,,0,0,0,,open
100,1,0,,0,0,0,,開放
100,2,0,,0,0,0,,開け放す
100,2,0,,0,0,0,,開く
100,1,0,,0,0,0,,オープン
`

// User2Table is a synonym table where "open" is ambiguous.
const User2Table = `200,1,1,,0,0,0,,open
200,1,0,,0,0,0,,開く
`
