package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/pnl-dashboard/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	profilesPath *string
}

func NewProfilesCmd(profilesPath *string) *cobra.Command {
	pc := &ProfilesCmd{profilesPath: profilesPath}
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the endpoint profiles found in the profiles file",
		RunE:  pc.run,
	}
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	registry, err := config.NewRegistry(*pc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", *pc.profilesPath, err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No profiles found in: %s\n", *pc.profilesPath)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profiles in %s:\n%s\n",
		*pc.profilesPath,
		strings.Join(profiles, "\n"))
	return nil
}
