package users

import "github.com/spf13/afero"

// DefaultRecords is the built-in three-user bootstrap set, used only when
// there is no persisted store and no configured seed list. Secrets are
// admin123 / proctor123 / viewer123.
func DefaultRecords() []UserRecord {
	return []UserRecord{
		{
			Identity:   "admin1",
			SecretHash: "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9",
			Role:       RoleAdmin,
		},
		{
			Identity:   "gv01",
			SecretHash: "fabefa442bd43d86550ea50319847d6c4e371f7aa9448772a19de203180c595a",
			Role:       RoleProctor,
			Scope:      "E01",
		},
		{
			Identity:   "view1",
			SecretHash: "65375049b9e4d7cad6c9ba286fdeb9394b28135a3e84136404cfccfdcc438894",
			Role:       RoleViewer,
		},
	}
}

// LoadSeedFile reads an externally configured seed list. The file uses the
// same JSON schema as the persisted store.
func LoadSeedFile(fs afero.Fs, path string) ([]UserRecord, error) {
	return NewFileSource(fs, path).Load()
}
