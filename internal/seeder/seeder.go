// Package seeder fills an empty registry with demo regions, benefit
// categories, citizens, grants, certificates and an operator account. All
// writes go through the services, so demo data passes the same validation and
// lands in the event log like any operator edit.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	benefitmodels "welfare/internal/benefits/models"
	benefitservice "welfare/internal/benefits/service"
	certmodels "welfare/internal/certificates/models"
	certservice "welfare/internal/certificates/service"
	citizenmodels "welfare/internal/citizens/models"
	citizenservice "welfare/internal/citizens/service"
	usermodels "welfare/internal/users/models"
	userservice "welfare/internal/users/service"
	id "welfare/pkg/domain"
	"welfare/pkg/validation"
)

//go:generate mockgen -source=seeder.go -destination=mocks/mocks.go -package=mocks Regions,Citizens,Categories,Grants,Certificates,Users

type Regions interface {
	CreateRegion(ctx context.Context, name string) (*citizenmodels.Region, error)
	ListRegions(ctx context.Context) ([]*citizenmodels.Region, error)
}

type Citizens interface {
	Create(ctx context.Context, cmd *citizenservice.CitizenCommand) (*citizenmodels.Citizen, error)
}

type Categories interface {
	CreateCategory(ctx context.Context, d benefitmodels.CategoryDetails) (*benefitmodels.Category, error)
}

type Grants interface {
	GrantBenefit(ctx context.Context, cmd *benefitservice.GrantCommand) (*benefitmodels.Grant, error)
}

type Certificates interface {
	Issue(ctx context.Context, cmd *certservice.CertificateCommand) (*certmodels.Certificate, error)
}

type Users interface {
	Create(ctx context.Context, cmd *userservice.UserCommand) (*usermodels.User, error)
}

// Services bundles the write paths the seeder uses.
type Services struct {
	Regions      Regions
	Citizens     Citizens
	Categories   Categories
	Grants       Grants
	Certificates Certificates
	Users        Users
}

// Summary counts what a run created.
type Summary struct {
	Regions      int
	Categories   int
	Citizens     int
	Grants       int
	Certificates int
	Users        int
}

type Seeder struct {
	svc    Services
	logger *slog.Logger
	now    func() time.Time
}

func New(svc Services, logger *slog.Logger) *Seeder {
	return &Seeder{svc: svc, logger: logger, now: time.Now}
}

// DemoOperator is the account created for trying the API locally.
const (
	DemoOperator         = "operator"
	DemoOperatorPassword = "operator"
)

var demoRegions = []string{"Центральный", "Северный", "Заречный"}

var demoCategories = []benefitmodels.CategoryDetails{
	{Name: "Ветераны труда", Description: "Ежемесячная денежная выплата", LegalBasis: "Закон о ветеранах, ст. 22"},
	{Name: "Многодетные семьи", Description: "Компенсация оплаты коммунальных услуг", LegalBasis: "Указ о мерах поддержки многодетных семей"},
	{Name: "Инвалиды II группы", Description: "Бесплатный проезд в общественном транспорте"},
}

type demoCitizen struct {
	last, first, middle string
	born                string
	base                string // first nine identifier digits
	phone               string
	region              int
	categories          []int
	certificate         certmodels.Type
}

var demoCitizens = []demoCitizen{
	{"Иванова", "Мария", "Петровна", "1958-03-14", "112233445", "+7 (912) 345-67-89", 0, []int{0}, certmodels.TypeBenefits},
	{"Петров", "Сергей", "Иванович", "1981-11-02", "123456789", "", 1, []int{1}, certmodels.TypeFamilyComposition},
	{"Сидорова", "Анна", "", "1990-07-21", "234567890", "8 912 000-11-22", 1, []int{1, 2}, certmodels.TypeIncome},
	{"Кузнецов", "Павел", "Андреевич", "1949-01-30", "345678901", "", 2, []int{0, 2}, certmodels.TypeStatus},
	{"Смирнова", "Ольга", "Викторовна", "1975-05-09", "456789012", "", 0, nil, ""},
}

// SeedAll creates the demo set unless the registry already has regions, in
// which case it does nothing and returns a zero Summary.
func (s *Seeder) SeedAll(ctx context.Context) (Summary, error) {
	var sum Summary
	existing, err := s.svc.Regions.ListRegions(ctx)
	if err != nil {
		return sum, fmt.Errorf("check existing data: %w", err)
	}
	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "registry not empty, demo data skipped", "regions", len(existing))
		return sum, nil
	}

	regions := make([]id.RegionID, 0, len(demoRegions))
	for _, name := range demoRegions {
		r, err := s.svc.Regions.CreateRegion(ctx, name)
		if err != nil {
			return sum, fmt.Errorf("seed region %q: %w", name, err)
		}
		regions = append(regions, r.ID)
		sum.Regions++
	}

	categories := make([]id.CategoryID, 0, len(demoCategories))
	for _, d := range demoCategories {
		c, err := s.svc.Categories.CreateCategory(ctx, d)
		if err != nil {
			return sum, fmt.Errorf("seed category %q: %w", d.Name, err)
		}
		categories = append(categories, c.ID)
		sum.Categories++
	}

	today := s.now()
	for i, dc := range demoCitizens {
		citizenID, err := s.seedCitizen(ctx, dc, regions[dc.region])
		if err != nil {
			return sum, err
		}
		sum.Citizens++

		for _, ci := range dc.categories {
			_, err := s.svc.Grants.GrantBenefit(ctx, &benefitservice.GrantCommand{
				CitizenID:  citizenID,
				CategoryID: categories[ci],
				StartDate:  today.AddDate(-1, 0, -i),
				EndDate:    grantEnd(today, i),
				Number:     fmt.Sprintf("ДЕМО-%03d-%d", i+1, ci+1),
			})
			if err != nil {
				return sum, fmt.Errorf("seed grant for %s: %w", dc.last, err)
			}
			sum.Grants++
		}

		if dc.certificate != "" {
			_, err := s.svc.Certificates.Issue(ctx, &certservice.CertificateCommand{
				CitizenID: citizenID,
				Type:      dc.certificate,
				IssueDate: today.AddDate(0, 0, -7*i),
			})
			if err != nil {
				return sum, fmt.Errorf("seed certificate for %s: %w", dc.last, err)
			}
			sum.Certificates++
		}
	}

	if _, err := s.svc.Users.Create(ctx, &userservice.UserCommand{
		Username:  DemoOperator,
		Password:  DemoOperatorPassword,
		LastName:  "Оператор",
		FirstName: "Демо",
		Role:      usermodels.RoleOperator,
	}); err != nil {
		return sum, fmt.Errorf("seed operator: %w", err)
	}
	sum.Users++

	s.logger.InfoContext(ctx, "demo data seeded",
		"regions", sum.Regions,
		"categories", sum.Categories,
		"citizens", sum.Citizens,
		"grants", sum.Grants,
		"certificates", sum.Certificates,
	)
	s.logger.WarnContext(ctx, "demo operator account created", "username", DemoOperator)
	return sum, nil
}

func (s *Seeder) seedCitizen(ctx context.Context, dc demoCitizen, region id.RegionID) (id.CitizenID, error) {
	born, err := time.Parse(time.DateOnly, dc.born)
	if err != nil {
		return id.CitizenID{}, fmt.Errorf("demo birth date %q: %w", dc.born, err)
	}
	identifier, ok := validation.WithControlNumber(dc.base)
	if !ok {
		return id.CitizenID{}, fmt.Errorf("demo identifier %q is too short", dc.base)
	}
	c, err := s.svc.Citizens.Create(ctx, &citizenservice.CitizenCommand{
		LastName:   dc.last,
		FirstName:  dc.first,
		MiddleName: dc.middle,
		BirthDate:  born,
		Identifier: identifier,
		Phone:      dc.phone,
		RegionID:   &region,
	})
	if err != nil {
		return id.CitizenID{}, fmt.Errorf("seed citizen %s: %w", dc.last, err)
	}
	return c.ID, nil
}

// grantEnd leaves every other grant open-ended and ends the rest within the
// default expiring window so the expiring list has entries.
func grantEnd(today time.Time, i int) *time.Time {
	if i%2 == 0 {
		return nil
	}
	end := today.AddDate(0, 0, 10*i)
	return &end
}
