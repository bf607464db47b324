// Copyright 2026 The Rivaas Authors
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

package param

import "github.com/google/uuid"

// UUID decodes RFC 4122 UUIDs in any form uuid.Parse accepts (canonical,
// braced, URN, raw hex) and encodes in the canonical lowercase hyphenated
// form.
var UUID = FromString("uuid", uuid.Parse, uuid.UUID.String)
