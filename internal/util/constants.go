package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 업로드 관련 상수
const (
	MimeImage       = "image/"
	MimePDF         = "application/pdf"
	MimeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedSheetExtensions = []string{".xlsx", ".xlsm"}
	AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
)
