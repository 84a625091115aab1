package pets

import "context"

// OwnerOf expone el ownerID de una mascota.
// Se usa para evitar ciclos de imports entre módulos (pets <-> ratings).
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerID, nil
}
