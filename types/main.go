package types

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)

type EntryState = string

var (
	StateRecorded EntryState = "recorded"
	StateRolled   EntryState = "rolled"
)
