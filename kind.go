package i18ndate

// Kind represents temporal field kind
type Kind int

const (
	//Date date only field kind
	Date Kind = iota
	//DateTime date with time field kind
	DateTime
)

const (
	//DateType declared storage type tag of date column
	DateType = "date"
	//DateTimeType declared storage type tag of datetime column
	DateTimeType = "datetime"
)

// String returns kind storage type tag
func (k Kind) String() string {
	if k == DateTime {
		return DateTimeType
	}
	return DateType
}

// KindOf returns kind for declared storage type tag, only exact "date" and "datetime" tags are tracked
func KindOf(typeTag string) (Kind, bool) {
	switch typeTag {
	case DateType:
		return Date, true
	case DateTimeType:
		return DateTime, true
	}
	return 0, false
}
