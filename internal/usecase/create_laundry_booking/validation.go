package create_laundry_booking

import "fmt"

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: items are required", ErrInvalidInput)
	}
	if req.PickupDate == "" {
		return fmt.Errorf("%w: pickupDate is required", ErrInvalidInput)
	}
	if req.PickupTime == "" {
		return fmt.Errorf("%w: pickupTime is required", ErrInvalidInput)
	}
	return nil
}
