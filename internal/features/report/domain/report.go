package domain

import "strconv"

// ReportPayload is the fixed field schema accepted by both generate endpoints.
// JSON keys match the placeholder names used inside the slide template.
type ReportPayload struct {
	ServiceCode        string `json:"SERVICE_CODE" binding:"required"`
	IDNumber           string `json:"ID_NUMBER" binding:"required"`
	NameAR             string `json:"NAME_AR" binding:"required"`
	NameEN             string `json:"NAME_EN" binding:"required"`
	DaysCount          *int   `json:"DAYS_COUNT" binding:"required"`
	EntryDateGregorian string `json:"ENTRY_DATE_GREGORIAN" binding:"required"`
	ExitDateGregorian  string `json:"EXIT_DATE_GREGORIAN" binding:"required"`
	EntryDateHijri     string `json:"ENTRY_DATE_HIJRI"`
	ExitDateHijri      string `json:"EXIT_DATE_HIJRI"`
	ReportIssueDate    string `json:"REPORT_ISSUE_DATE" binding:"required"`
	NationalityAR      string `json:"NATIONALITY_AR" binding:"required"`
	NationalityEN      string `json:"NATIONALITY_EN" binding:"required"`
	DoctorNameAR       string `json:"DOCTOR_NAME_AR" binding:"required"`
	DoctorNameEN       string `json:"DOCTOR_NAME_EN" binding:"required"`
	JobTitleAR         string `json:"JOB_TITLE_AR" binding:"required"`
	JobTitleEN         string `json:"JOB_TITLE_EN" binding:"required"`
	HospitalNameAR     string `json:"HOSPITAL_NAME_AR" binding:"required"`
	HospitalNameEN     string `json:"HOSPITAL_NAME_EN" binding:"required"`
	PrintDate          string `json:"PRINT_DATE" binding:"required"`
	PrintTime          string `json:"PRINT_TIME" binding:"required"`
}

// FieldMapping maps placeholder names to their resolved string values.
type FieldMapping map[string]string

// Mapping resolves the payload into placeholder values. Date fields go
// through NormalizeDate uniformly, Hijri dates included; absent optional
// fields resolve to the empty string.
func (p *ReportPayload) Mapping() FieldMapping {
	days := 0
	if p.DaysCount != nil {
		days = *p.DaysCount
	}

	return FieldMapping{
		"SERVICE_CODE":         p.ServiceCode,
		"ID_NUMBER":            p.IDNumber,
		"NAME_AR":              p.NameAR,
		"NAME_EN":              p.NameEN,
		"DAYS_COUNT":           strconv.Itoa(days),
		"ENTRY_DATE_GREGORIAN": NormalizeDate(p.EntryDateGregorian),
		"EXIT_DATE_GREGORIAN":  NormalizeDate(p.ExitDateGregorian),
		"ENTRY_DATE_HIJRI":     NormalizeDate(p.EntryDateHijri),
		"EXIT_DATE_HIJRI":      NormalizeDate(p.ExitDateHijri),
		"REPORT_ISSUE_DATE":    NormalizeDate(p.ReportIssueDate),
		"NATIONALITY_AR":       p.NationalityAR,
		"NATIONALITY_EN":       p.NationalityEN,
		"DOCTOR_NAME_AR":       p.DoctorNameAR,
		"DOCTOR_NAME_EN":       p.DoctorNameEN,
		"JOB_TITLE_AR":         p.JobTitleAR,
		"JOB_TITLE_EN":         p.JobTitleEN,
		"HOSPITAL_NAME_AR":     p.HospitalNameAR,
		"HOSPITAL_NAME_EN":     p.HospitalNameEN,
		"PRINT_DATE":           NormalizeDate(p.PrintDate),
		"PRINT_TIME":           p.PrintTime,
	}
}

// DownloadFilename builds the per-request filename carried in the UTF-8
// content-disposition parameter. The name may contain non-ASCII characters.
func (p *ReportPayload) DownloadFilename(ext string) string {
	return "sickLeaves_" + p.NameAR + "_" + p.IDNumber + "." + ext
}

// FallbackFilename is the ASCII-safe filename used alongside the UTF-8 one.
func FallbackFilename(ext string) string {
	return "sickLeaves." + ext
}
