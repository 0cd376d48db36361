// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langfuse

import (
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query string pair.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order on the wire and allows the same name to repeat, which is
// how multi-valued filters such as tags are expressed.
type Params []Param

// Add appends one pair.
func (p *Params) Add(name, value string) {
	*p = append(*p, Param{Name: name, Value: value})
}

// AddInt appends one integer-valued pair.
func (p *Params) AddInt(name string, value int) {
	p.Add(name, strconv.Itoa(value))
}

// AddAll appends one pair per value, in order.
func (p *Params) AddAll(name string, values []string) {
	for _, v := range values {
		p.Add(name, v)
	}
}

// Get returns the first value for name.
func (p Params) Get(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return "", false
}

// Encode serializes the parameters as a query string in insertion order.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}
