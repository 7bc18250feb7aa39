package domain

type RecordType string

const (
	RecordWork     RecordType = "work"
	RecordVacation RecordType = "vacation"
	RecordSick     RecordType = "sick"
	RecordHoliday  RecordType = "holiday"
)

// ValidRecordTypes is the canonical set of accepted record types.
var ValidRecordTypes = map[RecordType]bool{
	RecordWork: true, RecordVacation: true, RecordSick: true, RecordHoliday: true,
}

type ComplianceFlag string

const (
	FlagExceedsMaxDaily   ComplianceFlag = "exceeds_max_daily"
	FlagInsufficientBreak ComplianceFlag = "insufficient_break"
)
