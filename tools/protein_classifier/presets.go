package protein_classifier

import "fmt"

// Presets are the example sequences offered in the dropdown, in display order.
// Index 0 is the default selection.
var Presets = []string{
	"SMIKQRTLKNIIRATGVGLHSGEKVYLTLKPAPVDTGIVFCRTDLDPVVEIPARAENVGETTMSTTLVKGDVKVDTVEHLLSAMAGLGIDNAYVELSASEVPIMDGSAGPFVFLIQSAGLQEQEAAKKFIRIKREVSVEEGDKRAVFVPFDGFKVSFEIDFDHPVFRGRTQQASVDFSSTSFVKEVSRARTFGFMRDIEYLRSQNLALGGSVENAIVVDENRVLNEDGLRYEDEFVKHKILDAIGDLYLLGNSLIGEFRGFKSGHALNNQLLRTLIADKDAWEVVTFEDARTAPISYMRPAAAV",
	"MEHTIAVIPGSFDPITYGHLDIIERSTDRFDEIHVCVLKNSKKEGTFSLEERMDLIEQSVKHLPNVKVHQFSGLLVDYCEQVGAKTIIRGLRAVSDFEYELRLTSMNKKLNNEIETLYMMSSTNYSFISSSIVKEVAAYRADISEFVPPYVEKALKKKFK",
	"TIKEMPQPKTFGELKNLPLLNTDKPVQALMKIADELGEIFKFEAPGRVTRYLSSQRLIKEACDESRFDKNLSQALKFVRDFAGDGLFTSWTHEKNWKKAHNILLPSFSQQAMKGYHAMMVDIAVQLVQKWERLNADEHIEVPEDMTRLTLDTIGLCGFNYRFNSFYRDQPHPFITSMVRALDEAMNKLQRANPDDPAYDENKRQFQEDIKVMNDLVDKIIADRKASGEQSDDLLTHMLNGKDPETGEPLDDENIRYQIITFLIAGHETTSGLLSFALYFLVKNPHVLQKAAEEAARVLVDPVPSYKQVKQLKYVGMVLNEALRLWPTAPAFSLYAKEDTVLGGEYPLEKGDELMVLIPQLHRDKTIWGDDVEEFRPERFENPSAIPQHAFKPFGNGQRACEGQQFALHEATLVLGMMLKHFDFEDHTNYELDIKETLTLKPEGFVVKAKSKKIPLGGIPSPSTEQSAKKV",
	"AVCCICNDGECQNSNVILFCDMCNLAVHQECYGVPYIPEGQWLCRRCLQSPSRAVDCALCPNKGGAFKQTDDGRWAHVVCALWIPEVCFANTVFLEPIDSIEHIPPARWKLTCYICKQRGSGACIQCHKANCYTAFHVTCAQQAGLYMKMEPVRETGANGTSFSVRKTAYCDIHTPP",
	"MNELVDTTEMYLRTIYDLEEEGVTPLRARIAERLDQSGPTVSQTVSRMERDGLLRVAGDRHLELTEKGRALAIAVMRKHRLAERLLVDVIGLPWEEVHAEACRWEHVMSEDVERRLVKVLNNPTTSPFGNPIPGLVELGV",
	"IQRTPKIQVYSRHPAENGKSNFLNCYVSGFHPSDIEVDLLKNGERIEKVEHSDLSFSKDWSFYLLYYTEFTPTEKDEYACRVNHVTLSQPKIVKWDRDM",
	"GLSDGEWQQVLNVWGKVEADIAGHGQEVLIRLFTGHPETLEKFDKFKHLKTEAEMKASEDLKKHGTVVLTALGGILKKKGHHEAELKPLAQSHATKHKIPIKYLEFISDAIIHVLHSKHPGDFGADAQGAMTKALELFRNDIAAKYKELGFQG",
	"GSHMNQCPEHSQLTTLGVDGKEFPEVHLGQWYFIAGAAPTKEELATFDPVDNIVFNMAAGSAPMQLHLRATIRMKDGLCVPRKWIYHLTEGSTDLRTEGRPDMKTELFSSSCPGGIMLNETGQGYQRFLLYNRSPHPPEKCVEEFKSLTSCLDSKAFLLTPRNQEACELSNN",
	"GDPIADMIDQTVNNQVNRSLTALQVLPTAANTEASSHRLGTGVVPALQAAETGASSNASDKNLIETRCVLNHHSTQETAIGNFFSRAGLVSIITMPTTGTQNTDGYVNWDIDLMGYAQLRRKCELFTYMRFDAEFTFVVAKPNGELVPQLLQYMYVPPGAPKPTSRDSFAWQTATNPSVFVKMTDPPAQVSVPFMSPASAYQWFYDGYPTFGEHLQANDLDYGQCPNNMMGTFSIRTVGIEKSPHSITLRVYMRIKHVRAWIPRPLRNQPYLFKTNPNYKGNDIKCTSTSRDKITTL",
	"MVDVGGKPVSRRTAAASATVLLGEKAFWLVKENQLAKGDALAVAQIAGIMAAKQTSALIPLCHPIPLDRVAVSLELVEPGWRVVVTATCVASGRTGVEMEALTAASLAALALYDMCKAVTRDIVIQDVRLLSKTGG",
	"MGSSHHHHHHSSGLVPRGSHMNATIREILAKFGQLPTPVDTIADEADLYAAGLSSFASVQLMLGIEEAFDIEFPDNLLNRKSFASIKAIEDTVKLILDGKEAA",
	"MRIGYGEDSHRLEEGRPLYLCGLLIPSPVGALAHSDGDAALHALTDALLSAYGLGDIGLLFPDTDPRWRGERSEVFLREALRLVEARGAKLLQASLVLTLDRPKLGPHRKALVDSLSRLLRLPQDRIGLTFKTSEGLAPSHVQARAVVLLDG",
	"RIIPVKINEGDVVHRSIEEYIRRNSLKGGIITGIGGLMEAVIGFYSPESKTYLEKRIKSSGSVIEVASLQGNYLVKRNGEVSIHIHVVAGFENTTVAGHLIHGTAKPMLEVFLIEIGE",
	"VLDVACGTCDVAMEARNQTGDAAFIIGTDFSPGMLTLGLQKLKKNRRFATIPLVCANALALPFQSTHFDAVLIAFGIRNIMDRKGALKQFHDALKPGG",
	"VPRGPGYDNPAYQGCAITGAQVGSLRTPGPTYLQTTYEYSRSNLWRNFGVVIAFTVLYILVTSFGSEVFNFTNSGGGALEFKRSKSAKNK",
	"GAVRVDVSGGLGTDAMVVSSYLNTDKSLVTVIVNADNQDRDISLAISGGQPAGAVSVYETSAEHDLAPVRNAGADGRLAVKKQSIVTI",
	"DVPPYVMAQGNHARPFGVNLEGLKRRGFDKPTMHVIRNIYKMLYRSGKTLEEVLPEIEQIAETDSAISFFVEFFKRSTRGII",
	"KDHTTLVAAVKAAGLVPTLESKGPFTVFAPTNAAFGKLPAGTVDNLVKPENKATLTKILTYHVVPGKLEASDLTDGKKLKTAEGEELTVKKMDGKTWIVDAKGGTSMVTISNVNQSNGVIHVVDTVLMP",
	"DTVWLVWFCIQIPVILCVDIVDKYPAWLCANPGAPLHALHRFRQWYIATHNDPVVQWTPATHPLLSNGGGSWVPLFFWIELVFTLPTVLYAVYRLGFVRGRNRAPLGGTTGPLELLLLVYALETALTTAVCIHNISYWDPSIYSSAQKNTFRFQLMGPWLAMPSLLFLDMYSR",
	"AANKADLASDENIEALKVLGAVPTIAAGELALKSAAHAKILRYLPGDSSFAPIEGAKLSAPQVKALTMIAEHMKKFGSTGVQEILNKIVFEDIGMIVVYPVED",
	"SIALVWFIKLCTSEEAKSMVAGLQIVFSNNTDLSSDGKLPVLILDNGTKVSGYVNIVQFLHKNICTSKYEKGTDYEEDLAIVGKKDRLLEYSLLNYVDVEISRLTDYQLFLNTKNYNEYTKKLFSKLLYFPMWYNTPLQLR",
}

// Preset returns the preset sequence at index i.
func Preset(i int) (string, error) {
	if i < 0 || i >= len(Presets) {
		return "", fmt.Errorf("%w: index %d outside [0, %d)", ErrUnknownPreset, i, len(Presets))
	}
	return Presets[i], nil
}
