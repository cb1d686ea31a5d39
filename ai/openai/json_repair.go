// Copyright 2025 Poiesic Systems
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

package openai

// repairJSON fixes two formatting slips small models make in JSON mode:
// keys missing their opening quote (`{answer": "x"}`) and trailing commas
// before a closing brace or bracket. Text inside strings is never touched.
func repairJSON(s string) string {
	in := []rune(s)
	out := make([]rune, 0, len(in)+8)
	inString := false

	for i := 0; i < len(in); i++ {
		ch := in[i]

		if inString {
			out = append(out, ch)
			if ch == '\\' && i+1 < len(in) {
				i++
				out = append(out, in[i])
			} else if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
			out = append(out, ch)
		case ',':
			j := skipSpace(in, i+1)
			if j < len(in) && (in[j] == '}' || in[j] == ']') {
				// drop trailing comma
				continue
			}
			out = append(out, ch)
			out, i = repairKey(in, out, i)
		case '{':
			out = append(out, ch)
			out, i = repairKey(in, out, i)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

// repairKey copies whitespace after in[i] and, if an unquoted key ending in
// `":` follows, writes it with its opening quote. It returns the index of the
// last consumed rune.
func repairKey(in, out []rune, i int) ([]rune, int) {
	j := skipSpace(in, i+1)
	out = append(out, in[i+1:j]...)
	i = j - 1

	if j >= len(in) || !isLetter(in[j]) {
		return out, i
	}
	k := j
	for k < len(in) && (isLetter(in[k]) || in[k] == '_') {
		k++
	}
	if k+1 < len(in) && in[k] == '"' && in[k+1] == ':' {
		out = append(out, '"')
		out = append(out, in[j:k]...)
		out = append(out, '"')
		return out, k
	}
	return out, i
}

func skipSpace(in []rune, i int) int {
	for i < len(in) && (in[i] == ' ' || in[i] == '\n' || in[i] == '\t' || in[i] == '\r') {
		i++
	}
	return i
}
