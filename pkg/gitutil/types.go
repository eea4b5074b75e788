package gitutil

// Protocol represents the git protocol type.
type Protocol string

const (
	// ProtocolHTTPS represents HTTPS git protocol
	ProtocolHTTPS Protocol = "https"
	// ProtocolHTTP represents plain HTTP git protocol
	ProtocolHTTP Protocol = "http"
	// ProtocolSSH represents SSH git protocol
	ProtocolSSH Protocol = "ssh"
	// ProtocolGit represents git protocol
	ProtocolGit Protocol = "git"
)

// RepoURL represents a parsed git repository URL with multiple access formats.
type RepoURL struct {
	// Host is the git hosting provider (e.g., github.com, gitlab.com)
	Host string `json:"host" yaml:"host"`

	// Owner is the repository owner or organization
	Owner string `json:"owner" yaml:"owner"`

	// Name is the repository name
	Name string `json:"name" yaml:"name"`

	// Path is the full repository path without ".git". It differs from
	// Owner/Name when the host nests groups.
	Path string `json:"path" yaml:"path"`

	// Protocol is the access protocol used in the original URL
	Protocol Protocol `json:"protocol" yaml:"protocol"`

	// CloneURL is the full clone URL in the original format
	CloneURL string `json:"clone_url" yaml:"clone_url"`

	// HTTPSURL is the HTTPS version of the clone URL
	HTTPSURL string `json:"https_url" yaml:"https_url"`

	// SSHURL is the SSH version of the clone URL
	SSHURL string `json:"ssh_url" yaml:"ssh_url"`
}
