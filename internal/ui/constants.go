// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HandleHeight is the drag handle row at the top of a sheet.
	HandleHeight = 1

	// TitleHeight is the sheet title plus the blank line below it.
	TitleHeight = 2

	// FooterHeight is the blank line plus key hints at the bottom of a sheet.
	FooterHeight = 2

	// SheetOverhead is the vertical space a sheet uses around its list rows.
	SheetOverhead = BorderHeight + HandleHeight + TitleHeight + FooterHeight

	// MinSheetRows is the smallest number of list rows a sheet shrinks to.
	MinSheetRows = 1

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
