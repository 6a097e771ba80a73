package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/refugio/internal/client/client"
	"github.com/dmitrijs2005/refugio/internal/client/models"
)

// clearField typed at a profile prompt empties the field.
const clearField = "-"

// EditProfile asks for every profile field, showing the current value.
// An empty answer keeps it. The result is saved to the server.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.navigate(ctx, models.ViewSettings)
	}

	p := a.profiles.Current()

	var err error
	if p.Name, err = a.askField("Nombre", p.Name); err != nil {
		return err
	}
	if p.Pronouns, err = a.askField("Pronombres", p.Pronouns); err != nil {
		return err
	}
	if p.Color, err = a.askField("Color (#RRGGBB)", p.Color); err != nil {
		return err
	}

	emotions, err := a.askField("Emociones (separadas por comas)", strings.Join(p.Emotions, ", "))
	if err != nil {
		return err
	}
	p.Emotions = splitList(emotions)

	reminder, err := a.askField("Recordatorio diario (HH:MM o no)", p.Reminder.String())
	if err != nil {
		return err
	}
	if p.Reminder, err = models.ParseReminder(reminder, p.Reminder); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if _, err := a.profiles.Save(ctx, p); err != nil {
		if errors.Is(err, client.ErrInvalidArgument) {
			printlnFn("Revisa los datos del perfil:", err.Error())
		} else {
			printlnFn("No se pudo guardar tu perfil; se mantiene el anterior.")
		}
		return err
	}
	printlnFn("Perfil guardado.")

	a.nav.RequestNavigation(models.ViewSettings)
	a.render(ctx)
	return nil
}

func (a *App) askField(label, current string) (string, error) {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return current, nil
	case clearField:
		return "", nil
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
