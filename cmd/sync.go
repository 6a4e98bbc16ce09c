package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/uselessgoddess/suns/config"
	"github.com/uselessgoddess/suns/converter"
	appLog "github.com/uselessgoddess/suns/log"
	"github.com/uselessgoddess/suns/model"
)

var syncFilter config.FilterConfig

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Периодически выгружать расписания по cron",
	Long: `sync сразу выгружает расписания всех указанных специальностей и курсов,
а потом повторяет это по расписанию cron. В -output можно использовать {spec} и {year}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, _ := cmd.Flags().GetString("cron")
		specs, _ := cmd.Flags().GetStringSlice("spec")
		years, _ := cmd.Flags().GetIntSlice("year")
		output, _ := cmd.Flags().GetString("output")
		converterName, _ := cmd.Flags().GetString("converter")

		if err := syncFilter.Init(); err != nil {
			return err
		}
		c, err := converter.Converter(converterName)
		if err != nil {
			return err
		}

		a, err := setup()
		if err != nil {
			return err
		}
		if len(specs) == 0 {
			specs = a.departments.Codes()
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		job := &syncJob{app: a, converter: c, output: output, specs: specs, years: years, filter: &syncFilter}

		sched := newScheduler()
		if _, err := sched.AddFunc(schedule, func() { job.run(ctx) }); err != nil {
			return fmt.Errorf("bad cron spec %q: %w", schedule, err)
		}

		job.run(ctx)
		sched.Start()
		appLog.Info("sync scheduled", "cron", schedule, "specs", strings.Join(specs, ","), "years", years)

		<-ctx.Done()
		<-sched.Stop().Done()
		return nil
	},
}

// newScheduler следующий запуск пропускается, пока не закончился предыдущий
func newScheduler() *cron.Cron {
	return cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
}

type syncJob struct {
	app       *app
	converter converter.IConverter
	output    string
	specs     []string
	years     []int
	filter    *config.FilterConfig
}

// run одна выгрузка. Ошибка одного курса не останавливает остальные.
func (j *syncJob) run(ctx context.Context) {
	for _, spec := range j.specs {
		spec = config.NormalizeCode(spec)
		for _, year := range j.years {
			if ctx.Err() != nil {
				return
			}

			timetable, err := j.app.plugin.GetTimetable(ctx, spec, year)
			if err != nil {
				appLog.Error("sync fetch failed", err, "spec", spec, "year", year)
				continue
			}

			out := strings.NewReplacer("{spec}", spec, "{year}", strconv.Itoa(year)).Replace(j.output)
			schedule := model.Schedule{
				Institution: j.app.plugin.GetInstitution(),
				Department:  spec,
				Year:        year,
				Timetable:   j.filter.Apply(timetable),
			}
			if err := j.converter.Write(schedule, out); err != nil {
				appLog.Error("sync write failed", err, "spec", spec, "year", year)
				continue
			}
			appLog.Info("sync written", "spec", spec, "year", year, "sessions", schedule.Timetable.Sessions())
		}
	}
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().String("cron", "0 6 * * *", "Расписание выгрузки (cron, 5 полей)")
	syncCmd.Flags().StringSliceP("spec", "s", nil, "Коды специальностей, по умолчанию все из пресета")
	syncCmd.Flags().IntSliceP("year", "y", []int{0}, "Курсы, считая с нуля")
	syncCmd.Flags().StringP("output", "o", "{spec}-{year}.json", "Куда писать результат")
	syncCmd.Flags().StringP("converter", "c", "pjson", fmt.Sprintf("Тип выходных данных %v", converter.Names))
	addFilterFlags(syncCmd, &syncFilter)
}
