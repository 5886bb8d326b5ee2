package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/rigup/pkg/config"
	"github.com/arthur-debert/rigup/pkg/doctor"
	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/executor"
	"github.com/arthur-debert/rigup/pkg/filesystem"
	"github.com/arthur-debert/rigup/pkg/managers"
	"github.com/arthur-debert/rigup/pkg/probe"
	"github.com/arthur-debert/rigup/pkg/style"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: MsgDoctorShort,
		Long:  MsgDoctorLong,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	catalog, err := config.Catalog()
	if err != nil {
		return err
	}

	registry := managers.NewRegistry()
	prober := probe.New(filesystem.NewOS(), executor.NewRunner(0), registry.Binaries())

	facts, err := prober.Probe(cmd.Context(), catalog)
	if err != nil {
		return err
	}

	report := doctor.Check(facts, catalog)
	fmt.Fprint(cmd.OutOrStdout(), style.RenderDoctorReport(report))

	if !report.Healthy() {
		return errors.Newf(errors.ErrNotFound, "%d required tools missing", report.MissingRequired)
	}
	return nil
}
