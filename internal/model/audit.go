package model

import "time"

// Audit action names, kept identical to the original management log
const (
	AuditCreateRoom         = "CRIAR_SALA"
	AuditAddDesigner        = "ADICIONAR_PROJETISTA"
	AuditValidatePoints     = "VALIDAR_PONTO"
	AuditInactivateDesigner = "INATIVAR_PROJETISTA"
	AuditReactivateDesigner = "REATIVAR_PROJETISTA"
	AuditEvaluateCoord      = "AVALIAR_COORDENADOR"
	AuditConsolidateCoord   = "CONSOLIDAR_AVALS_COORD"
	AuditCreateAccount      = "CRIAR_USUARIO"
	AuditEnableAccount      = "ATIVAR_USUARIO"
	AuditDisableAccount     = "DESATIVAR_USUARIO"
	AuditResetPassword      = "RESET_SENHA"
	AuditPromote            = "PROMOVER"
	AuditAssignRoom         = "ATRIBUIR_SALA"
	AuditLogin              = "LOGIN"
	AuditLoginFailed        = "LOGIN_FALHOU"
	AuditBackup             = "BACKUP_MANUAL"
	AuditImportBackup       = "IMPORT_BACKUP"
	AuditUndo               = "DESFAZER"
)

// AuditEntry is one line of the append-only management log
type AuditEntry struct {
	Timestamp time.Time
	Actor     string
	Role      Role
	Action    string
	Details   string
}
