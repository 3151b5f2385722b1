package util

func checkInterfaceName(name string) error {
	if len(name) > MaxInterfaceNameLength {
		return ErrNameTooLong
	}
	return nil
}
