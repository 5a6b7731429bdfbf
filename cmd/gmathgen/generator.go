// Copyright 2025 go-gmath Authors
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

package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// matrixSpec describes one generated matrix type.
type matrixSpec struct {
	Rows    int
	Cols    int
	Package string
	Aliases []string
}

type fieldSpec struct {
	Name string
	Row  int
	Col  int
}

type aliasSpec struct {
	Name string
	Elem string
}

type templateData struct {
	matrixSpec
	TypeName string
	Fields   []fieldSpec
	Square   bool
	Aliases  []aliasSpec
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// generate renders the matrix source for spec and returns it
// goimports-formatted.
func generate(spec matrixSpec) ([]byte, error) {
	data := templateData{
		matrixSpec: spec,
		TypeName:   fmt.Sprintf("Matrix%dx%d", spec.Rows, spec.Cols),
		Square:     spec.Rows == spec.Cols,
	}
	for r := 1; r <= spec.Rows; r++ {
		for c := 1; c <= spec.Cols; c++ {
			data.Fields = append(data.Fields, fieldSpec{
				Name: fmt.Sprintf("M%d%d", r, c),
				Row:  r,
				Col:  c,
			})
		}
	}
	for _, elem := range spec.Aliases {
		data.Aliases = append(data.Aliases, aliasSpec{
			Name: data.TypeName + titleCaser.String(elem),
			Elem: elem,
		})
	}

	var buf bytes.Buffer
	if err := matrixTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", data.TypeName, err)
	}

	src, err := imports.Process("matrix.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", data.TypeName, err)
	}
	return src, nil
}

var matrixTemplate = template.Must(template.New("matrix").Parse(`// Code generated by gmathgen -rows {{.Rows}} -cols {{.Cols}}. DO NOT EDIT.

package {{.Package}}

import "golang.org/x/exp/constraints"

// {{.TypeName}} is a {{.Rows}}x{{.Cols}} row-major matrix.
type {{.TypeName}}[T constraints.Integer | constraints.Float] struct {
{{- range .Fields}}
	{{.Name}} T
{{- end}}
}

// New{{.TypeName}} builds a matrix from its elements in row-major order.
func New{{.TypeName}}[T constraints.Integer | constraints.Float]({{range $i, $f := .Fields}}{{if $i}}, {{end}}m{{$f.Row}}{{$f.Col}}{{end}} T) {{.TypeName}}[T] {
	return {{.TypeName}}[T]{
{{- range .Fields}}
		{{.Name}}: m{{.Row}}{{.Col}},
{{- end}}
	}
}
{{if .Square}}
// {{.TypeName}}Identity returns the multiplicative identity.
func {{.TypeName}}Identity[T constraints.Integer | constraints.Float]() {{.TypeName}}[T] {
	var m {{.TypeName}}[T]
{{- range .Fields}}{{if eq .Row .Col}}
	m.{{.Name}} = 1
{{- end}}{{end}}
	return m
}
{{end}}
// Add returns the element-wise sum of m and o.
func (m {{.TypeName}}[T]) Add(o {{.TypeName}}[T]) {{.TypeName}}[T] {
	return {{.TypeName}}[T]{
{{- range .Fields}}
		{{.Name}}: m.{{.Name}} + o.{{.Name}},
{{- end}}
	}
}

// Sub returns the element-wise difference of m and o.
func (m {{.TypeName}}[T]) Sub(o {{.TypeName}}[T]) {{.TypeName}}[T] {
	return {{.TypeName}}[T]{
{{- range .Fields}}
		{{.Name}}: m.{{.Name}} - o.{{.Name}},
{{- end}}
	}
}

// Neg returns the element-wise negation of m.
func (m {{.TypeName}}[T]) Neg() {{.TypeName}}[T] {
	return {{.TypeName}}[T]{
{{- range .Fields}}
		{{.Name}}: -m.{{.Name}},
{{- end}}
	}
}

// MulScalar scales every element of m by s.
func (m {{.TypeName}}[T]) MulScalar(s T) {{.TypeName}}[T] {
	return {{.TypeName}}[T]{
{{- range .Fields}}
		{{.Name}}: m.{{.Name}} * s,
{{- end}}
	}
}
{{range .Aliases}}
// {{.Name}} is {{$.TypeName}} specialized to {{.Elem}}.
type {{.Name}} = {{$.TypeName}}[{{.Elem}}]
{{end}}`))
