package provider_test

import (
	"fmt"

	"github.com/goliatone/giturl/pkg/giturl"
	"github.com/goliatone/giturl/pkg/giturl/provider"
)

func ExampleParseGitLab() {
	u, err := giturl.Parse("https://gitlab.com/gitlab-org/sbom/systems/gitlab-core.git")
	if err != nil {
		panic(err)
	}
	info, err := provider.ParseGitLab(u)
	if err != nil {
		panic(err)
	}
	fmt.Println(info.Owner, info.Subgroups, info.Repo)
	// Output: gitlab-org [sbom systems] gitlab-core
}

func ExampleInfo() {
	u, err := giturl.Parse("git@ssh.dev.azure.com:v3/CompanyName/ProjectName/RepoName")
	if err != nil {
		panic(err)
	}
	info, err := provider.Info[provider.AzureDevOps](u, provider.ExtractorFunc[provider.AzureDevOps](provider.ParseAzureDevOps))
	if err != nil {
		panic(err)
	}
	fmt.Println(info.Fullname())
	// Output: CompanyName/ProjectName/RepoName
}
