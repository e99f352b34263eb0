package provider

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

// Register creates a salon profile for an existing provider account.
func (s *DefaultProviderService) Register(req RegisterRequest) (*models.Provider, error) {
	if strings.TrimSpace(req.SalonName) == "" || strings.TrimSpace(req.Address) == "" || strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("salon name, address and city are required")
	}
	if !utils.ValidateEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if !utils.ValidatePhone(req.Phone) {
		return nil, fmt.Errorf("invalid phone number")
	}
	if req.PlusCode != "" && !utils.IsValidPlusCode(req.PlusCode) {
		return nil, fmt.Errorf("invalid plus code")
	}

	if existing, err := s.Repo.GetByUserID(req.UserID); err == nil && existing != nil {
		return nil, fmt.Errorf("a salon profile already exists for this account")
	} else if err != nil && !errors.Is(err, providerRepo.ErrNotFound) {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	salonType := req.SalonType
	if salonType == "" {
		salonType = "unisex"
	}

	now := time.Now()
	p := &models.Provider{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		SalonName:      strings.TrimSpace(req.SalonName),
		Description:    req.Description,
		Address:        strings.TrimSpace(req.Address),
		City:           strings.TrimSpace(req.City),
		Country:        req.Country,
		Phone:          req.Phone,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		SalonType:      salonType,
		PlusCode:       req.PlusCode,
		PaymentMethods: models.ProviderPaymentMethods{Fiat: true},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.Lat != 0 || req.Lng != 0 {
		p.LocationGeo = models.NewGeoPoint(req.Lat, req.Lng)
	}

	if err := s.Repo.Create(p); err != nil {
		utils.GetLogger().Error("Register: failed to create provider", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("provider registered",
		zap.String("providerId", p.ID), zap.String("city", p.City))
	return p, nil
}

func (s *DefaultProviderService) GetByID(id string) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	return p, nil
}

func (s *DefaultProviderService) GetByUserID(userID string) (*models.Provider, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider for user %s: %w", userID, err)
	}
	return p, nil
}

// Update persists a modified profile after re-validating contact details and
// bank accounts.
func (s *DefaultProviderService) Update(p *models.Provider) (*models.Provider, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("provider id is required")
	}
	if p.Email != "" && !utils.ValidateEmail(p.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if p.Phone != "" && !utils.ValidatePhone(p.Phone) {
		return nil, fmt.Errorf("invalid phone number")
	}
	for _, acct := range p.PaymentMethods.BankAccounts {
		if !utils.ValidateIBAN(acct.IBAN) {
			return nil, fmt.Errorf("invalid IBAN for bank %s", acct.BankName)
		}
	}

	p.UpdatedAt = time.Now()
	if err := s.Repo.Update(p); err != nil {
		return nil, fmt.Errorf("failed to update provider %s: %w", p.ID, err)
	}
	return p, nil
}

// UpdateSchedule replaces the weekly working hours. Each open day must have a
// valid open/close pair; breaks must fall inside opening hours and must not
// overlap each other.
func (s *DefaultProviderService) UpdateSchedule(id string, schedule models.WeeklySchedule) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}

	for _, day := range []models.DaySchedule{
		schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday, schedule.Saturday, schedule.Sunday,
	} {
		if err := validateDaySchedule(day); err != nil {
			return nil, err
		}
	}

	p.WorkingHours = schedule
	p.UpdatedAt = time.Now()
	if err := s.Repo.Update(p); err != nil {
		return nil, fmt.Errorf("failed to update schedule for %s: %w", id, err)
	}
	return p, nil
}

func validateDaySchedule(day models.DaySchedule) error {
	if day.Closed {
		return nil
	}
	if !utils.ValidateClockTime(day.Open) || !utils.ValidateClockTime(day.Close) {
		return fmt.Errorf("invalid opening hours %q-%q", day.Open, day.Close)
	}
	if day.Open >= day.Close {
		return fmt.Errorf("opening time %s must precede closing time %s", day.Open, day.Close)
	}
	for i, br := range day.Breaks {
		if !utils.ValidateClockTime(br.Start) || !utils.ValidateClockTime(br.End) || br.Start >= br.End {
			return fmt.Errorf("invalid break %q-%q", br.Start, br.End)
		}
		if br.Start < day.Open || br.End > day.Close {
			return fmt.Errorf("break %s-%s falls outside opening hours %s-%s", br.Start, br.End, day.Open, day.Close)
		}
		for _, other := range day.Breaks[i+1:] {
			if br.Start < other.End && other.Start < br.End {
				return fmt.Errorf("breaks %s-%s and %s-%s overlap", br.Start, br.End, other.Start, other.End)
			}
		}
	}
	return nil
}

func (s *DefaultProviderService) UpdatePaymentMethods(id string, pm models.ProviderPaymentMethods) (*models.Provider, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	for _, acct := range pm.BankAccounts {
		if !utils.ValidateIBAN(acct.IBAN) {
			return nil, fmt.Errorf("invalid IBAN for bank %s", acct.BankName)
		}
	}
	p.PaymentMethods = pm
	p.UpdatedAt = time.Now()
	if err := s.Repo.Update(p); err != nil {
		return nil, fmt.Errorf("failed to update payment methods for %s: %w", id, err)
	}
	return p, nil
}

func (s *DefaultProviderService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete provider %s: %w", id, err)
	}
	return nil
}
