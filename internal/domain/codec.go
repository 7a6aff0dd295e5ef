/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDocumentDecode marks any failure to decode or validate document bytes.
// Callers distinguish "nothing to import" from "tried and failed" through it.
var ErrDocumentDecode = errors.New("document decode failed")

// EncodeDocument serializes the document to its canonical JSON form.
// Round trip through DecodeDocument is lossless for every model field.
func EncodeDocument(d Document) ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}

// EncodeDocumentIndent serializes in human-readable form for files on disk.
func EncodeDocumentIndent(d Document) ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return append(b, '\n'), nil
}

// DecodeDocument parses document bytes, validates the structural invariants
// and repairs out-of-range transforms. Malformed input yields an error
// wrapping ErrDocumentDecode.
func DecodeDocument(b []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrDocumentDecode, err)
	}
	if err := d.Validate(); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrDocumentDecode, err)
	}
	if d.Elements == nil {
		d.Elements = []Element{}
	}
	for i := range d.Elements {
		d.Elements[i].Transform = d.Elements[i].Transform.Normalized()
	}
	return d, nil
}
