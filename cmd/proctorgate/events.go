package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quangdm/proctorgate/pkg/authz"
	"github.com/quangdm/proctorgate/pkg/events"
)

var (
	thresholdsPitch int
	thresholdsYaw   int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the events visible to a user (risk-only for viewers)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		sess, err := app.loginAs(actingAs)
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		if err := authz.Can(sess, authz.OpViewEvents); err != nil {
			return err
		}
		admit := authz.ScopeFilter(sess)

		// Viewers only get the risk summary; the event feed needs the
		// acknowledge privilege.
		if authz.Can(sess, authz.OpAcknowledgeEvent) == nil {
			evs, err := events.LoadEvents(app.fsys, app.config.EventsFile)
			if err != nil {
				return err
			}
			for _, ev := range events.FilterEvents(evs, admit) {
				fmt.Printf("%s\t%s\t%s\t%s\t%s\n", ev.Timestamp, ev.ExamID, ev.Student, ev.EventType, ev.Severity)
			}
		}

		risks, err := events.LoadRisks(app.fsys, app.config.RisksFile)
		if err != nil {
			return err
		}
		for _, r := range events.FilterRisks(risks, admit) {
			fmt.Printf("%s\t%s\trisk=%d\n", r.ExamID, r.Student, r.RiskScore)
		}
		return nil
	},
}

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Show or edit the detection thresholds",
}

func init() {
	thresholdsSetCmd.Flags().IntVar(&thresholdsPitch, "pitch", -15, "pitch threshold in degrees")
	thresholdsSetCmd.Flags().IntVar(&thresholdsYaw, "yaw", 20, "yaw threshold in degrees")
	thresholdsCmd.AddCommand(thresholdsGetCmd, thresholdsSetCmd)
}

var thresholdsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current thresholds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		t, err := events.LoadThresholds(app.fsys, app.config.ThresholdsFile)
		if err != nil {
			return err
		}
		fmt.Printf("pitch=%d yaw=%d\n", t.PitchDegrees, t.YawDegrees)
		return nil
	},
}

var thresholdsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the thresholds (admin only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		sess, err := app.loginAs(actingAs)
		if err != nil {
			return err
		}
		defer app.sessions.End(sess.ID)

		if err := authz.Can(sess, authz.OpEditThresholds); err != nil {
			return err
		}

		t := events.Thresholds{PitchDegrees: thresholdsPitch, YawDegrees: thresholdsYaw}
		if err := events.SaveThresholds(app.fsys, app.config.ThresholdsFile, t); err != nil {
			return err
		}
		fmt.Printf("saved pitch=%d yaw=%d\n", t.PitchDegrees, t.YawDegrees)
		return nil
	},
}
