package models

// Description rules
const (
	MaxDescriptionLength = 90
	DefaultDescription   = "Descrição não adicionada"
)

// File permissions
const (
	PermissionDataFile   = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
