package telemetry

import (
	"context"
)

// Entity labels used on domain metrics
const (
	EntityOwner    = "owner"
	EntityCompany  = "company"
	EntityProperty = "property"
	EntityUser     = "user"
)

// DomainMetrics counts business events. A nil *DomainMetrics is valid and
// records nothing, so services can run without metrics.
type DomainMetrics struct {
	created        *Counter
	deleted        *Counter
	deleteRefused  *Counter
	loginAttempts  *Counter
	companyContact *Counter
}

// NewDomainMetrics registers the domain counters on mp
func NewDomainMetrics(mp *MeterProvider) (*DomainMetrics, error) {
	meter := mp.Meter("propertyhub.domain")

	created, err := NewCounter(meter, "propertyhub_entities_created_total", "Entities created", "{entity}")
	if err != nil {
		return nil, err
	}
	deleted, err := NewCounter(meter, "propertyhub_entities_deleted_total", "Entities deleted", "{entity}")
	if err != nil {
		return nil, err
	}
	refused, err := NewCounter(meter, "propertyhub_delete_refused_total", "Deletes refused because of dependent records", "{request}")
	if err != nil {
		return nil, err
	}
	logins, err := NewCounter(meter, "propertyhub_login_attempts_total", "Login attempts by result", "{attempt}")
	if err != nil {
		return nil, err
	}
	contact, err := NewCounter(meter, "propertyhub_company_contacts_flagged_total", "Owners flagged as company contact", "{owner}")
	if err != nil {
		return nil, err
	}

	return &DomainMetrics{
		created:        created,
		deleted:        deleted,
		deleteRefused:  refused,
		loginAttempts:  logins,
		companyContact: contact,
	}, nil
}

// RecordCreated counts a created entity
func (m *DomainMetrics) RecordCreated(ctx context.Context, entity string) {
	if m == nil {
		return
	}
	m.created.Inc(ctx, AttrEntity.String(entity))
}

// RecordDeleted counts a deleted entity
func (m *DomainMetrics) RecordDeleted(ctx context.Context, entity string) {
	if m == nil {
		return
	}
	m.deleted.Inc(ctx, AttrEntity.String(entity))
}

// RecordDeleteRefused counts a delete blocked by dependents
func (m *DomainMetrics) RecordDeleteRefused(ctx context.Context, entity string) {
	if m == nil {
		return
	}
	m.deleteRefused.Inc(ctx, AttrEntity.String(entity))
}

// RecordLogin counts a login attempt
func (m *DomainMetrics) RecordLogin(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.loginAttempts.Inc(ctx, AttrResult.String(result))
}

// RecordCompanyContact counts an owner flagged as company contact
func (m *DomainMetrics) RecordCompanyContact(ctx context.Context) {
	if m == nil {
		return
	}
	m.companyContact.Inc(ctx)
}
