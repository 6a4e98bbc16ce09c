package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/uselessgoddess/suns/config"
	"github.com/uselessgoddess/suns/converter"
	"github.com/uselessgoddess/suns/model"
)

var fetchFilter config.FilterConfig

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Скачать расписание курса и сохранить его",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, _ := cmd.Flags().GetString("spec")
		spec = config.NormalizeCode(spec)
		year, _ := cmd.Flags().GetInt("year")
		output, _ := cmd.Flags().GetString("output")
		converterName, _ := cmd.Flags().GetString("converter")

		if err := fetchFilter.Init(); err != nil {
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

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		timetable, err := a.plugin.GetTimetable(ctx, spec, year)
		if err != nil {
			return fmt.Errorf("ошибка при парсинге расписания: %w", err)
		}

		schedule := model.Schedule{
			Institution: a.plugin.GetInstitution(),
			Department:  spec,
			Year:        year,
			Timetable:   fetchFilter.Apply(timetable),
		}
		if err := c.Write(schedule, output); err != nil {
			return fmt.Errorf("ошибка в сохранении расписания: %w", err)
		}
		return nil
	},
}

// addFilterFlags фильтры занятий, как у старого парсера: точное значение или ~регулярка
func addFilterFlags(cmd *cobra.Command, f *config.FilterConfig) {
	cmd.Flags().Var(&f.NameMatcher.MatchRaw, "name", "Требуемые предметы")
	cmd.Flags().Var(&f.TutorMatcher.MatchRaw, "tutor", "Требуемые преподаватели")
	cmd.Flags().Var(&f.PlaceMatcher.MatchRaw, "place", "Требуемые аудитории")
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringP("spec", "s", "", "Код специальности (см. suns departments)")
	fetchCmd.Flags().IntP("year", "y", 0, "Курс, считая с нуля")
	fetchCmd.Flags().StringP("output", "o", "data.out", "Файл, куда будет записываться результат (- для stdout)")
	fetchCmd.Flags().StringP("converter", "c", "pjson", fmt.Sprintf("Тип выходных данных %v", converter.Names))
	addFilterFlags(fetchCmd, &fetchFilter)
	fetchCmd.MarkFlagRequired("spec")
}
