package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type modeCard struct {
	Title       string
	Description string
	Href        string
}

var modeCards = []modeCard{
	{"Export Content", "Download users, groups, projects, workbooks, and datasources as CSV.", "/export"},
	{"Import Users & Groups", "Create users or groups from an uploaded CSV file.", "/import"},
	{"Convert Roster", "Restructure a user spreadsheet into the bulk-import CSV shape.", "/convert"},
	{"Download Workbooks", "Fetch workbook files from a project on the server.", "/download"},
	{"Upload Workbooks", "Publish local .twb/.twbx files into a project.", "/upload"},
}

func homePage() Node {
	cards := make([]Node, 0, len(modeCards))
	for _, c := range modeCards {
		cards = append(cards, Div(Class("card"),
			H2(Text(c.Title)),
			P(Text(c.Description)),
			P(A(Href(c.Href), Text("Open ->"))),
		))
	}
	return appPage("Migration World CLT", "home",
		P(Text("Connect to Tableau Server / Cloud to export or import content. Each action signs in, runs once, and signs out.")),
		Div(Class("card grid"), Group(cards)),
	)
}
