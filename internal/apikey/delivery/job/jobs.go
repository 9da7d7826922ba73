package job

import "context"

func (s *implScheduler) rotate() {
	ctx, cancel := context.WithTimeout(context.Background(), rotateTimeout)
	defer cancel()

	key, err := s.uc.Rotate(ctx)
	if err != nil {
		s.l.Errorf(ctx, "apikey.delivery.job.rotate: usecase Rotate failed: %v", err)
		return
	}
	s.l.Infof(ctx, "apikey.delivery.job.rotate: rotated to key %d", key.ID)
}
