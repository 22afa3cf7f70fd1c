package ui

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func convertPage() Node {
	return appPage("Convert User Roster to Import CSV", "convert",
		Div(Class("card"),
			P(Text("Upload a roster exported from Tableau (.xlsx or .csv with 'Email' and 'Site Role' columns) to convert it to the bulk-import CSV format.")),
			Form(Method("post"), Action("/convert"), EncType("multipart/form-data"),
				Label(Class("field"),
					Span(Text("Roster File")),
					Input(Type("file"), Name("file"), Accept(".xlsx,.csv")),
				),
				submitButton("Convert Now"),
			),
		),
	)
}
