package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
)

func TestCleanText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<ul>
			<li>  Entregado
					en    porteria </li>
			<li><span>2 x</span> <b>Zapatos</b></li>
			<li>—</li>
		</ul>
	`))
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		got = append(got, CleanText(sel))
	})

	expect := []string{
		"Entregado en porteria",
		"2 x Zapatos",
		"—",
	}
	if diff := cmp.Diff(expect, got); diff != "" {
		t.Fatal(diff)
	}
}
