/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package opts

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of Options. Absent keys leave the corresponding
// option untouched.
type File struct {
	MaxIterations   *int    `yaml:"max-iterations"`
	WorklistOrder   *string `yaml:"worklist-order"`
	CalleeIsUse     *bool   `yaml:"callee-is-use"`
	SingleStatement *bool   `yaml:"single-statement"`
}

// Load decodes a YAML options document.
func Load(r io.Reader) (*File, error) {
	ret := new(File)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	/* decode the document, an empty one is valid */
	if err := dec.Decode(ret); err != nil && err != io.EOF {
		return nil, fmt.Errorf("liveness: invalid options: %w", err)
	}

	/* check the values */
	if ret.MaxIterations != nil && *ret.MaxIterations < 0 {
		return nil, fmt.Errorf("liveness: invalid options: negative max-iterations %d", *ret.MaxIterations)
	}
	if ret.WorklistOrder != nil {
		if _, ok := ParseOrder(*ret.WorklistOrder); !ok {
			return nil, fmt.Errorf("liveness: invalid options: unknown worklist-order %q", *ret.WorklistOrder)
		}
	}
	return ret, nil
}

// LoadFile decodes the YAML options document at path.
func LoadFile(path string) (*File, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Load(fp)
}

// Apply overlays the keys present in the document on o.
func (self *File) Apply(o *Options) {
	if self.MaxIterations != nil {
		o.MaxIterations = *self.MaxIterations
	}
	if self.WorklistOrder != nil {
		o.WorklistOrder, _ = ParseOrder(*self.WorklistOrder)
	}
	if self.CalleeIsUse != nil {
		o.CalleeIsUse = *self.CalleeIsUse
	}
	if self.SingleStatement != nil {
		o.SingleStatement = *self.SingleStatement
	}
}
