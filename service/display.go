package service

import "quantor/domain"

// Display is the surface the form controller renders to.
type Display interface {
	MarkInvalid(field domain.Field, invalid bool)
	SetFieldValue(field domain.Field, value string)
	ShowResult(eoqText, totalCostText string)
	ClearResult()
	Notify(message string)
	AppendLogBlock(id, block string)
	RemoveLogBlock(id string)
	RemoveLogBlocks()
}

// ThemeDisplay applies a theme's visual state.
type ThemeDisplay interface {
	ApplyTheme(appearance domain.Appearance)
}
