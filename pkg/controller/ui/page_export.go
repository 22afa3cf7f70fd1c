package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type exportEntity struct {
	Key   string
	Label string
}

var exportEntities = []exportEntity{
	{"users", "Download Users"},
	{"groups", "Download Groups"},
	{"projects", "Download Projects"},
	{"workbooks", "Download Workbooks"},
	{"datasources", "Download Datasources"},
}

func exportPage(d ConnectionDefaults) Node {
	buttons := make([]Node, 0, len(exportEntities))
	for _, e := range exportEntities {
		buttons = append(buttons, Button(
			Type("submit"),
			Class("btn primary"),
			Attr("formaction", "/export/"+e.Key),
			Text(e.Label),
		))
	}

	return appPage("Export Tableau Content", "export",
		Div(Class("card"),
			Form(Method("post"), Action("/export/users"),
				connectionFields(d),
				Div(Class("form-actions"), Group(buttons)),
			),
		),
	)
}
