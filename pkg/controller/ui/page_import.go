package ui

import (
	"github.com/migration-world/tabmigrate/pkg/domain/model"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func importPage(d ConnectionDefaults) Node {
	return appPage("Import Users & Groups", "import",
		Div(Class("card"),
			Form(Method("post"), Action("/import"), EncType("multipart/form-data"),
				Label(Class("field"),
					Span(Text("Import Type")),
					Select(Name("import_type"),
						Option(Value("users"), Selected(), Text("Users")),
						Option(Value("groups"), Text("Groups")),
					),
				),
				Label(Class("field"),
					Span(Text("CSV File (any format with recognized columns)")),
					Input(Type("file"), Name("file"), Accept(".csv")),
				),
				connectionFields(d),
				submitButton("Import Now"),
			),
		),
	)
}

func importResultPage(importType string, report *model.ImportReport) Node {
	title := "Users Imported"
	if importType == "groups" {
		title = "Groups Imported"
	}
	return appPage("Import Users & Groups", "import",
		reportCard(title, report),
		P(A(Href("/import"), Text("Run another import"))),
	)
}
