package catalog

const (
	SizeToySmall   = "Toy/Small"
	SizeMedium     = "Medium"
	SizeLargeGiant = "Large/Giant"
	SizeUnknown    = "Unknown"
)

const DefaultBreed = "Mixed Breed / Unknown"

var breeds = []string{
	// toy
	"Affenpinscher", "Brussels Griffon", "Cavalier King Charles Spaniel",
	"Chihuahua", "Chinese Crested", "English Toy Spaniel", "Italian Greyhound",
	"Japanese Chin", "Maltese", "Miniature Pinscher", "Papillon",
	"Pekingese", "Pomeranian", "Pug", "Russian Toy", "Shih Tzu",
	"Toy Fox Terrier", "Toy Poodle", "Yorkshire Terrier",

	// small
	"Bichon Frise", "Boston Terrier", "Cairn Terrier", "Cardigan Welsh Corgi",
	"Pembroke Welsh Corgi", "Coton de Tulear", "Dachshund (Mini)",
	"Dachshund (Standard)", "Fox Terrier (Smooth)", "Fox Terrier (Wire)",
	"Havanese", "Jack Russell Terrier", "Lhasa Apso", "Miniature Schnauzer",
	"Norfolk Terrier", "Norwich Terrier", "Parson Russell Terrier",
	"Patterdale Terrier", "Scottish Terrier", "Sealyham Terrier",
	"Shetland Sheepdog", "West Highland White Terrier", "Whippet",

	// medium
	"American Cocker Spaniel", "Australian Shepherd", "Basenji", "Beagle",
	"Border Collie", "Border Terrier", "Brittany",
	"Bulldog", "Bull Terrier", "Chinese Shar-Pei",
	"Cocker Spaniel (English)", "Dalmatian", "Finnish Spitz",
	"French Bulldog", "Icelandic Sheepdog", "Keeshond",
	"Korean Jindo", "Lagotto Romagnolo", "Miniature American Shepherd",
	"Samoyed (medium-large)", "Shiba Inu", "Shikoku",
	"Schnauzer (Standard)", "Soft Coated Wheaten Terrier",
	"Staffordshire Bull Terrier", "Vizsla",

	// large
	"Airedale Terrier", "Akita", "Alaskan Malamute",
	"American Bulldog", "Australian Cattle Dog",
	"Belgian Malinois", "Belgian Tervuren", "Belgian Sheepdog",
	"Bernese Mountain Dog", "Bloodhound", "Boxer",
	"Cane Corso", "Chesapeake Bay Retriever",
	"Collie (Rough)", "Collie (Smooth)",
	"Doberman", "Dutch Shepherd",
	"English Springer Spaniel", "Field Spaniel",
	"German Shepherd", "German Shorthaired Pointer",
	"Golden Retriever", "Gordon Setter", "Greyhound",
	"Irish Setter", "Irish Water Spaniel",
	"Labrador Retriever", "Nova Scotia Duck Tolling Retriever",
	"Old English Sheepdog", "Pointer",
	"Rottweiler", "Rhodesian Ridgeback",
	"Siberian Husky", "Standard Poodle", "Weimaraner",

	// giant
	"Anatolian Shepherd", "Boerboel", "Borzoi",
	"Bullmastiff", "Dogue de Bordeaux",
	"Great Dane", "Great Pyrenees",
	"Irish Wolfhound", "Komondor", "Kuvasz",
	"Leonberger", "Mastiff", "Neapolitan Mastiff",
	"Newfoundland", "Saint Bernard", "Tibetan Mastiff",

	// sighthounds and primitive types
	"Afghan Hound", "Azawakh", "Basenji (primitive)",
	"Ibizan Hound", "Pharaoh Hound", "Saluki", "Sloughi",

	// spitz and northern
	"American Eskimo Dog", "Eurasier", "Finnish Lapphund",
	"Karelian Bear Dog", "Norwegian Elkhound",
	"Norwegian Buhund", "Norrbottenspets",
	"Swedish Vallhund", "Yakutian Laika",

	// asian and regional
	"Chow Chow", "Chinese Chongqing Dog",
	"Thai Ridgeback", "Taiwan Dog",
	"Kishu Ken", "Kai Ken", "Hokkaido",
	"Tosa", "Tibetan Spaniel", "Tibetan Terrier",

	// water and hunting
	"Barbet", "Curly-Coated Retriever", "Flat-Coated Retriever",
	"Irish Terrier", "Portuguese Water Dog",
	"Spinone Italiano", "Wirehaired Pointing Griffon",
	"German Wirehaired Pointer",

	// herding
	"Australian Kelpie", "Bearded Collie",
	"Briard", "Catahoula Leopard Dog",
	"Entlebucher Mountain Dog",
	"Greater Swiss Mountain Dog",
	"Pyrenean Shepherd",

	// terriers
	"American Staffordshire Terrier",
	"Bedlington Terrier", "Dandie Dinmont Terrier",
	"Kerry Blue Terrier", "Lakeland Terrier",
	"Manchester Terrier", "Mini Bull Terrier",
	"Rat Terrier",

	// rare and emerging
	"Caucasian Shepherd Dog", "Central Asian Shepherd Dog",
	"Czechoslovakian Wolfdog", "Saarloos Wolfdog",
	"Xoloitzcuintli", "Peruvian Inca Orchid",

	DefaultBreed,
}

// Coarse on purpose: only breeds with an unambiguous class are mapped,
// everything else reports Unknown.
var breedSizes = map[string]string{
	"Chihuahua":                     SizeToySmall,
	"Pomeranian":                    SizeToySmall,
	"Yorkshire Terrier":             SizeToySmall,
	"Maltese":                       SizeToySmall,
	"Toy Poodle":                    SizeToySmall,
	"Shih Tzu":                      SizeToySmall,
	"Papillon":                      SizeToySmall,
	"Japanese Chin":                 SizeToySmall,
	"Pekingese":                     SizeToySmall,
	"Russian Toy":                   SizeToySmall,
	"Affenpinscher":                 SizeToySmall,
	"Brussels Griffon":              SizeToySmall,
	"Chinese Crested":               SizeToySmall,
	"Pug":                           SizeToySmall,
	"Miniature Pinscher":            SizeToySmall,
	"Toy Fox Terrier":               SizeToySmall,
	"Italian Greyhound":             SizeToySmall,
	"English Toy Spaniel":           SizeToySmall,
	"Cavalier King Charles Spaniel": SizeToySmall,
	"Bichon Frise":                  SizeToySmall,
	"Boston Terrier":                SizeToySmall,
	"Cairn Terrier":                 SizeToySmall,
	"Dachshund (Mini)":              SizeToySmall,
	"Dachshund (Standard)":          SizeToySmall,
	"Jack Russell Terrier":          SizeToySmall,
	"Lhasa Apso":                    SizeToySmall,
	"Miniature Schnauzer":           SizeToySmall,
	"Norfolk Terrier":               SizeToySmall,
	"Norwich Terrier":               SizeToySmall,
	"West Highland White Terrier":   SizeToySmall,
	"Scottish Terrier":              SizeToySmall,
	"Whippet":                       SizeToySmall,
	"Pembroke Welsh Corgi":          SizeToySmall,
	"Cardigan Welsh Corgi":          SizeToySmall,
	"Havanese":                      SizeToySmall,
	"Coton de Tulear":               SizeToySmall,

	"Beagle":                     SizeMedium,
	"French Bulldog":             SizeMedium,
	"Bulldog":                    SizeMedium,
	"Border Collie":              SizeMedium,
	"Australian Shepherd":        SizeMedium,
	"Shiba Inu":                  SizeMedium,
	"Korean Jindo":               SizeMedium,
	"Schnauzer (Standard)":       SizeMedium,
	"Staffordshire Bull Terrier": SizeMedium,
	"Soft Coated Wheaten Terrier": SizeMedium,
	"Vizsla":                     SizeMedium,
	"Dalmatian":                  SizeMedium,
	"Keeshond":                   SizeMedium,
	"Brittany":                   SizeMedium,

	"Labrador Retriever":       SizeLargeGiant,
	"Golden Retriever":         SizeLargeGiant,
	"German Shepherd":          SizeLargeGiant,
	"Siberian Husky":           SizeLargeGiant,
	"Doberman":                 SizeLargeGiant,
	"Rottweiler":               SizeLargeGiant,
	"Boxer":                    SizeLargeGiant,
	"Weimaraner":               SizeLargeGiant,
	"Pointer":                  SizeLargeGiant,
	"Old English Sheepdog":     SizeLargeGiant,
	"Chesapeake Bay Retriever": SizeLargeGiant,
	"Belgian Malinois":         SizeLargeGiant,
	"Rhodesian Ridgeback":      SizeLargeGiant,
	"Collie (Rough)":           SizeLargeGiant,
	"Collie (Smooth)":          SizeLargeGiant,
	"Standard Poodle":          SizeLargeGiant,

	"Great Dane":                 SizeLargeGiant,
	"Mastiff":                    SizeLargeGiant,
	"Neapolitan Mastiff":         SizeLargeGiant,
	"Saint Bernard":              SizeLargeGiant,
	"Newfoundland":               SizeLargeGiant,
	"Leonberger":                 SizeLargeGiant,
	"Great Pyrenees":             SizeLargeGiant,
	"Bernese Mountain Dog":       SizeLargeGiant,
	"Tibetan Mastiff":            SizeLargeGiant,
	"Caucasian Shepherd Dog":     SizeLargeGiant,
	"Central Asian Shepherd Dog": SizeLargeGiant,
	"Irish Wolfhound":            SizeLargeGiant,
}

func Breeds() []string {
	out := make([]string, len(breeds))
	copy(out, breeds)
	return out
}

func SizeClass(breed string) string {
	if size, ok := breedSizes[breed]; ok {
		return size
	}
	return SizeUnknown
}
