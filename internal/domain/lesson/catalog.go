package lesson

import "sort"

// catalog holds the built-in lesson copy for the program, keyed by week.
// Content lives here as structured data so the viewer stays one generic
// page; adding a week means adding an entry, not a handler.
var catalog = map[int]Definition{
	1: {
		Week:  1,
		Topic: "Getting Started with Excel",
		Objectives: []string{
			"Identify the parts of the Excel window: ribbon, formula bar, name box, and status bar",
			"Create, save, and reopen a workbook",
			"Enter, edit, and clear text, numbers, and dates in cells",
			"Navigate a worksheet with the keyboard and the name box",
		},
		Sections: []Section{
			{
				Heading: "The Excel Window",
				Body: "When Excel opens you are looking at a **workbook** — a file that can hold many **worksheets**. " +
					"Each worksheet is a grid of **cells** addressed by column letter and row number, such as `A1` or `C12`.\n\n" +
					"The **ribbon** across the top groups commands into tabs (Home, Insert, Page Layout). " +
					"The **formula bar** under the ribbon shows the true contents of the selected cell, which may differ from what the cell displays.",
			},
			{
				Heading: "Entering and Editing Data",
				Body: "Click a cell and type to replace its contents; press `F2` or double-click to edit in place. " +
					"Excel right-aligns numbers and dates and left-aligns text — a quick way to spot a number that was accidentally stored as text.\n\n" +
					"Press `Enter` to confirm and move down, `Tab` to confirm and move right, and `Esc` to abandon an edit.",
			},
			{
				Heading: "Saving Your Work",
				Body: "Use *File > Save As* the first time to choose a location and name. " +
					"The default `.xlsx` format is correct for this course. After that, `Ctrl+S` saves in place — make it a habit after every exercise.",
			},
		},
		Exercise: Exercise{
			Title: "Build a Class Contact Sheet",
			Steps: []string{
				"Open a blank workbook and save it as ContactSheet.xlsx",
				"In row 1 enter the headings: Name, Email, City, Joined",
				"Enter five rows of made-up contacts under the headings",
				"Use the name box to jump to cell D6, then correct the date there using F2",
				"Widen column B by double-clicking the column border so no email is cut off",
				"Save the workbook with Ctrl+S",
			},
		},
		Homework: []string{
			"Create a workbook listing ten items from your pantry with columns for Item, Quantity, and Purchased date",
			"Practice moving around it using only Ctrl+Arrow keys and the name box",
			"Bring one question about anything that behaved unexpectedly",
		},
		Shortcuts: []Shortcut{
			{Keys: "Ctrl+S", Action: "Save the workbook"},
			{Keys: "F2", Action: "Edit the active cell in place"},
			{Keys: "Ctrl+Arrow", Action: "Jump to the edge of a data region"},
			{Keys: "Ctrl+Home", Action: "Return to cell A1"},
			{Keys: "Esc", Action: "Cancel the current edit"},
		},
		KeyTerms: []KeyTerm{
			{Term: "Workbook", Definition: "The Excel file itself, containing one or more worksheets"},
			{Term: "Worksheet", Definition: "A single grid of cells inside a workbook"},
			{Term: "Cell reference", Definition: "The column-letter / row-number address of a cell, such as B7"},
			{Term: "Formula bar", Definition: "The strip above the grid showing the true contents of the active cell"},
		},
	},
	2: {
		Week:  2,
		Topic: "Formatting and Printing",
		Objectives: []string{
			"Apply number formats: currency, percentage, and date formats",
			"Format cells with fonts, fills, borders, and alignment",
			"Use cell styles and the format painter to keep formatting consistent",
			"Set up a worksheet for printing with margins, orientation, and print areas",
		},
		Sections: []Section{
			{
				Heading: "Number Formats",
				Body: "A number format changes how a value is *displayed*, never the value itself. " +
					"`19.5` formatted as currency shows `$19.50`; the formula bar still shows `19.5`.\n\n" +
					"The Home tab's Number group covers the common cases. For anything else, `Ctrl+1` opens *Format Cells*, where custom formats live.",
			},
			{
				Heading: "Cell Appearance",
				Body: "Bold headings, a fill color on the header row, and borders around the data region make a sheet readable at a glance. " +
					"Prefer **cell styles** (Home > Styles) over one-off formatting — restyling a whole workbook then takes one change.\n\n" +
					"The **format painter** copies formatting from one range to another: select the formatted range, click the paintbrush, then drag over the target.",
			},
			{
				Heading: "Printing Without Surprises",
				Body: "Always check *File > Print* preview before printing. Switch to landscape for wide sheets, " +
					"use *Page Layout > Print Area* to print only the data region, and enable *Print Titles* so the header row repeats on every page.",
			},
		},
		Exercise: Exercise{
			Title: "Dress Up a Sales Sheet",
			Steps: []string{
				"Open the Week2Sales.xlsx workbook from the class folder (or retype the ten rows shown on screen)",
				"Format the Amount column as currency with two decimal places",
				"Format the Growth column as a percentage with one decimal place",
				"Give the header row a bold font and a light fill, and add a border around the whole table",
				"Use the format painter to copy the Amount formatting to the Forecast column",
				"Set the print area to the table only and preview it in landscape orientation",
			},
		},
		Homework: []string{
			"Format your pantry workbook from week 1: currency for any prices, a proper date format for Purchased",
			"Add a header-row style you could reuse in another workbook",
			"Print-preview it and fix anything that spills onto a second page",
		},
		Shortcuts: []Shortcut{
			{Keys: "Ctrl+1", Action: "Open the Format Cells dialog"},
			{Keys: "Ctrl+B", Action: "Bold the selection"},
			{Keys: "Ctrl+Shift+$", Action: "Apply the currency format"},
			{Keys: "Ctrl+Shift+%", Action: "Apply the percentage format"},
			{Keys: "Ctrl+P", Action: "Open print preview"},
		},
		KeyTerms: []KeyTerm{
			{Term: "Number format", Definition: "A display rule applied to a cell's value without changing the value"},
			{Term: "Cell style", Definition: "A named, reusable bundle of formatting choices"},
			{Term: "Format painter", Definition: "Tool that copies formatting from one range to another"},
			{Term: "Print area", Definition: "The explicitly selected range that printing is limited to"},
		},
	},
	3: {
		Week:  3,
		Topic: "Formulas and Functions",
		Objectives: []string{
			"Write formulas using cell references and arithmetic operators",
			"Use SUM, AVERAGE, MIN, MAX, and COUNT on ranges",
			"Explain the difference between relative and absolute references",
			"Copy formulas with the fill handle and predict the resulting references",
		},
		Sections: []Section{
			{
				Heading: "Formulas and References",
				Body: "Every formula starts with `=`. `=B2*C2` multiplies whatever is in those two cells, and recalculates whenever they change — " +
					"that live recalculation is the whole point of a spreadsheet.\n\n" +
					"When you copy `=B2*C2` down a column, the references shift with it: the copy in row 3 reads `=B3*C3`. These are **relative references**.",
			},
			{
				Heading: "Absolute References",
				Body: "Sometimes one reference must *not* shift — a tax rate sitting in `F1`, say. Writing it as `$F$1` pins it: " +
					"`=B2*$F$1` copied down keeps pointing at `F1`. Press `F4` while editing to cycle a reference through the `$` variants.",
			},
			{
				Heading: "Built-in Functions",
				Body: "Functions are named calculations over ranges: `=SUM(B2:B11)`, `=AVERAGE(C2:C11)`, `=MAX(D2:D11)`. " +
					"`COUNT` counts numeric cells; `COUNTA` counts non-empty ones — the difference matters for columns with text.\n\n" +
					"The AutoSum button on the Home tab writes the `SUM` for the obvious range, but always check the range it guessed.",
			},
		},
		Exercise: Exercise{
			Title: "Invoice Totals",
			Steps: []string{
				"Recreate the six-line invoice shown on screen: Item, Qty, Unit Price columns",
				"In D2 write a formula for the line total and fill it down to D7",
				"Put the GST rate 0.15 in G1 and add a GST column using an absolute reference to $G$1",
				"Use SUM to total the line amounts and the GST, then compute the grand total",
				"Change the quantity in row 4 and confirm every total updates",
				"Use AVERAGE, MIN, and MAX under the table to summarize the line totals",
			},
		},
		Homework: []string{
			"Add a Total Value column (Quantity times a made-up unit price) to your pantry workbook",
			"Add SUM and AVERAGE summaries below the table",
			"Put a 10% discount rate in one cell and apply it to every row with an absolute reference",
		},
		Shortcuts: []Shortcut{
			{Keys: "F4", Action: "Cycle a reference between relative and absolute while editing"},
			{Keys: "Alt+=", Action: "Insert an AutoSum formula"},
			{Keys: "Ctrl+`", Action: "Toggle showing formulas instead of results"},
			{Keys: "F9", Action: "Recalculate all open workbooks"},
		},
		KeyTerms: []KeyTerm{
			{Term: "Formula", Definition: "A cell entry starting with '=' that computes a value"},
			{Term: "Function", Definition: "A named built-in calculation, such as SUM or AVERAGE"},
			{Term: "Relative reference", Definition: "A reference that shifts when the formula is copied"},
			{Term: "Absolute reference", Definition: "A $-pinned reference that stays fixed when copied"},
			{Term: "Fill handle", Definition: "The corner drag target that copies a formula across a range"},
		},
	},
	4: {
		Week:  4,
		Topic: "Charts and Data Basics",
		Objectives: []string{
			"Sort and filter a data table without corrupting it",
			"Create column, line, and pie charts from a data range",
			"Choose a chart type appropriate to the data",
			"Move, resize, and title charts and their axes",
		},
		Sections: []Section{
			{
				Heading: "Sorting and Filtering",
				Body: "Select a single cell inside the table before sorting — Excel then finds the table's edges itself, and rows stay intact. " +
					"Sorting with a partial selection is the classic way to scramble data.\n\n" +
					"`Ctrl+Shift+L` toggles filter buttons on the header row. Filters hide rows; they never delete them.",
			},
			{
				Heading: "Creating a Chart",
				Body: "Select the data including headings, then pick a chart from *Insert > Charts*. " +
					"**Column charts** compare categories, **line charts** show change over time, and **pie charts** show shares of a whole — " +
					"and stop being readable past about six slices.\n\n" +
					"A chart stays linked to its source range: edit the data and the chart follows.",
			},
			{
				Heading: "Polishing a Chart",
				Body: "Every chart needs a descriptive title — click the placeholder and type. " +
					"Use the + button beside a selected chart to toggle axis titles, data labels, and the legend. " +
					"Resist decorating further; a chart is finished when nothing more can be removed.",
			},
		},
		Exercise: Exercise{
			Title: "Chart the Monthly Sales",
			Steps: []string{
				"Open the Week4Monthly.xlsx workbook with twelve months of sales for three regions",
				"Sort the helper table of region totals from largest to smallest",
				"Create a column chart comparing the three region totals",
				"Create a line chart of the monthly figures for all regions over the year",
				"Title both charts and add axis titles to the line chart",
				"Filter the source table to quarter one only and watch what happens to the line chart",
			},
		},
		Homework: []string{
			"Chart your pantry spending by category using the chart type you think fits best",
			"Write one sentence justifying the chart type you chose",
			"Sort your pantry table by Total Value, largest first",
		},
		Shortcuts: []Shortcut{
			{Keys: "Ctrl+Shift+L", Action: "Toggle filter buttons on the header row"},
			{Keys: "Alt+F1", Action: "Insert a default chart for the selected data"},
			{Keys: "Ctrl+T", Action: "Convert the selection to a table"},
			{Keys: "F11", Action: "Insert a chart on its own sheet"},
		},
		KeyTerms: []KeyTerm{
			{Term: "Filter", Definition: "A header-row control that hides rows not matching a condition"},
			{Term: "Chart source range", Definition: "The cells a chart reads; the chart updates when they change"},
			{Term: "Legend", Definition: "The key mapping colors or markers to data series"},
			{Term: "Data series", Definition: "One set of related values plotted together on a chart"},
		},
	},
}

// Get returns the lesson definition for a week, if the catalog has one.
func Get(week int) (Definition, bool) {
	d, ok := catalog[week]
	return d, ok
}

// Weeks returns all catalog definitions in week order.
func Weeks() []Definition {
	out := make([]Definition, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}
