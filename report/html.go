// Copyright 2025 The Heapbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"html/template"
)

var htmlTemplate = template.Must(template.New("table").Parse(`
<table class='heapbench'>
<caption>order={{.Table.Order}} n={{.Table.N}}</caption>
<thead>
<tr><th>heap<th>sec/op ({{.Table.Label}})<th>vs fastest
</thead>
<tbody>
{{- $scale := .Scale}}
{{- range .Table.Rows}}
<tr><td>{{.Name}}<td>{{call $scale .Summary.Center}} &plusmn;{{.Summary.PctRangeString}}<td>{{.Delta}} {{.Note}}
{{- end}}
</tbody>
</table>
`))

// FormatHTML appends an HTML table rendering of t to buf.
func FormatHTML(buf *bytes.Buffer, t *Table) {
	err := htmlTemplate.Execute(buf, struct {
		Table *Table
		Scale func(float64) string
	}{t, commonTimeScaler(t)})
	if err != nil {
		// The only possible errors are the template not matching
		// the data structure, which is our bug, not the caller's.
		panic(err)
	}
}
