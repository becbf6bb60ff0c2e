package queries

type ConvertQuery struct {
	Hours   int64 `query:"hours"`
	Minutes int64 `query:"minutes"`
}
