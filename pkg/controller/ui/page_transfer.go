package ui

import (
	"github.com/migration-world/tabmigrate/pkg/domain/model"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func downloadPage(d ConnectionDefaults) Node {
	return appPage("Download Workbooks", "download",
		Div(Class("card"),
			P(Text("Connect to list the projects on the site, then pick a workbook or download a whole project.")),
			Form(Method("post"), Action("/download"),
				Input(Type("hidden"), Name("action"), Value("browse")),
				connectionFields(d),
				submitButton("Connect and Browse"),
			),
		),
	)
}

// downloadProjectsPage lists projects after a successful browse
func downloadProjectsPage(creds *model.Credentials, projects []*model.Project) Node {
	options := make([]Node, 0, len(projects))
	for _, p := range projects {
		options = append(options, Option(Value(p.Name), Text(p.Name)))
	}

	return appPage("Download Workbooks", "download",
		Div(Class("card"),
			Form(Method("post"), Action("/download"),
				hiddenCredentials(creds),
				Label(Class("field"),
					Span(Text("Project")),
					Select(Name("project"), Group(options)),
				),
				Div(Class("form-actions"),
					Button(Type("submit"), Class("btn primary"), Name("action"), Value("workbooks"), Text("List Workbooks")),
					Button(Type("submit"), Class("btn"), Name("action"), Value("archive"), Text("Download All as Zip")),
				),
			),
		),
	)
}

// downloadWorkbooksPage lists the workbooks of the chosen project
func downloadWorkbooksPage(creds *model.Credentials, projectName string, workbooks []*model.Workbook) Node {
	options := make([]Node, 0, len(workbooks))
	for _, wb := range workbooks {
		options = append(options, Option(Value(wb.Name), Text(wb.Name)))
	}

	return appPage("Download Workbooks", "download",
		Div(Class("card"),
			P(Textf("Found %d workbooks in project '%s'.", len(workbooks), projectName)),
			Form(Method("post"), Action("/download"),
				hiddenCredentials(creds),
				Input(Type("hidden"), Name("project"), Value(projectName)),
				Label(Class("field"),
					Span(Text("Workbook")),
					Select(Name("workbook"), Group(options)),
				),
				Div(Class("form-actions"),
					Button(Type("submit"), Class("btn primary"), Name("action"), Value("fetch"), Text("Download Workbook")),
				),
			),
		),
	)
}

func uploadPage(d ConnectionDefaults) Node {
	return appPage("Upload Workbooks", "upload",
		Div(Class("card"),
			Form(Method("post"), Action("/upload"), EncType("multipart/form-data"),
				Label(Class("field"),
					Span(Text("Upload Option")),
					Select(Name("project_mode"),
						Option(Value("existing"), Selected(), Text("Upload to Existing Project")),
						Option(Value("new"), Text("Create New Project and Upload")),
					),
				),
				labeledInput("Project Name", "project", "text", ""),
				Label(Class("field"),
					Span(Text("Workbook Files (.twbx or .twb)")),
					Input(Type("file"), Name("files"), Accept(".twbx,.twb"), Multiple()),
				),
				connectionFields(d),
				submitButton("Upload Workbooks"),
			),
		),
	)
}

func uploadResultPage(report *model.ImportReport) Node {
	return appPage("Upload Workbooks", "upload",
		reportCard("Workbooks Uploaded", report),
		P(A(Href("/upload"), Text("Upload more workbooks"))),
	)
}
