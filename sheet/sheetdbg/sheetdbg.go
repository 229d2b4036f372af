/*
Package sheetdbg implements helpers to debug the rule store of a Tag.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sheetdbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/styledsheet/sheet"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	TagTmpl  *template.Template
	RuleTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for the rule store of a Tag. The diagram is
// in GraphViz (DOT) format: one box per rule, chained in index order below
// the tag node. Clients provide the Tag and a Writer.
func ToGraphViz(tag sheet.Tag, w io.Writer) {
	tmpl, err := template.New("sheet").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.TagTmpl = template.Must(template.New("tag").Parse(tagNodeTmpl))
	gparams.RuleTmpl = template.Must(template.New("rule").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(ruleNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	if err = gparams.TagTmpl.Execute(w, tag.Length()); err != nil {
		panic(err)
	}
	prev := "tag"
	for i := 0; i < tag.Length(); i++ {
		name := fmt.Sprintf("rule%05d", i)
		r := rule{Name: name, Text: tag.GetRule(i)}
		if err = gparams.RuleTmpl.Execute(w, r); err != nil {
			panic(err)
		}
		if err = gparams.EdgeTmpl.Execute(w, edge{prev, name}); err != nil {
			panic(err)
		}
		prev = name
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a Tag and a testing.T, it will
// create a GraphViz image of the tag's rule store and write it to a file
// in the current folder, choosing a unique file name. The image is in SVG
// format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(tag sheet.Tag, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "sheet.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing rule store digraph to %s\n", tmpfile.Name())
	ToGraphViz(tag, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing rule store image\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type rule struct {
	Name string
	Text string
}

type edge struct {
	From, To string
}

func shortText(r rule) string {
	s := "\"\\\""
	if len(r.Text) > 24 {
		s += r.Text[:24] + "...\\\"\""
	} else {
		s += r.Text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const tagNodeTmpl = `tag	[ label="Tag ({{ . }} rules)" shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const ruleNodeTmpl = `{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
