// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package didentry

import "fmt"

// Service is a published endpoint associated with a DID: a type, an
// endpoint URL, and an optional priority requirement governing which
// management keys may revoke it.
type Service struct {
	alias               string
	serviceType         string
	endpoint            string
	priorityRequirement *int
}

func newService(alias, serviceType, endpoint string, priorityRequirement *int) (*Service, error) {
	if !validAlias(alias) {
		return nil, newErr(KindValidation, "alias", fmt.Errorf("alias %q must match [a-z0-9-]+", alias))
	}
	if serviceType == "" {
		return nil, newErr(KindValidation, "serviceType", fmt.Errorf("serviceType must be non-empty"))
	}
	if !validURL(endpoint) {
		return nil, newErr(KindValidation, "endpoint", fmt.Errorf("endpoint %q is not a valid absolute http(s) URL", endpoint))
	}
	if priorityRequirement != nil && *priorityRequirement < 0 {
		return nil, newErr(KindValidation, "priorityRequirement", fmt.Errorf("priorityRequirement must be non-negative"))
	}
	return &Service{
		alias:               normalizeAlias(alias),
		serviceType:         serviceType,
		endpoint:            endpoint,
		priorityRequirement: priorityRequirement,
	}, nil
}

// Alias returns the service's alias.
func (s *Service) Alias() string { return s.alias }

// Type returns the service type.
func (s *Service) Type() string { return s.serviceType }

// Endpoint returns the service endpoint URL.
func (s *Service) Endpoint() string { return s.endpoint }

// PriorityRequirement returns the service's priority requirement and
// whether one is set.
func (s *Service) PriorityRequirement() (int, bool) {
	if s.priorityRequirement == nil {
		return 0, false
	}
	return *s.priorityRequirement, true
}

// Equal reports whether s and other have identical fields. Service
// never compares equal to a ManagementKey or DIDKey: there is no
// cross-kind Equal method, by design (see key.go).
func (s *Service) Equal(other *Service) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.alias != other.alias || s.serviceType != other.serviceType || s.endpoint != other.endpoint {
		return false
	}
	switch {
	case s.priorityRequirement == nil && other.priorityRequirement == nil:
		return true
	case s.priorityRequirement == nil || other.priorityRequirement == nil:
		return false
	default:
		return *s.priorityRequirement == *other.priorityRequirement
	}
}

func (s *Service) id(didID string) string {
	return didID + "#" + s.alias
}

func (s *Service) fragment(didID string) serviceFragment {
	return serviceFragment{
		ID:                  s.id(didID),
		Type:                s.serviceType,
		ServiceEndpoint:     s.endpoint,
		PriorityRequirement: s.priorityRequirement,
	}
}
